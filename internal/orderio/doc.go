// Package orderio writes the contig-ordering report: for every vertex that
// carries a Contigs list (populated only when contraction runs with
// ordering capture enabled), the left-to-right sequence of contig ids and
// strands merged into it.
package orderio
