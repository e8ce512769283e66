// Package seqtool provides the small set of pure DNA-sequence helpers the
// scaffold graph engine needs: reverse-complementing a sequence buffer and
// shifting an [start,end) interval by a fixed offset.
//
// ReverseComplement is O(n) and allocation-bounded: it writes into a single
// freshly allocated output buffer and never grows it. Interval.Shift is O(1).
package seqtool
