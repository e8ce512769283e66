// Package fastaio reads and writes the graph's vertex sequences as FASTA
// (spec §6): one ">name\nseq\n" record per vertex. It is a pure adapter —
// the core graph and contraction packages never import it.
//
// All file access goes through an afero.Fs so callers can substitute an
// afero.NewMemMapFs() in tests instead of touching the real filesystem,
// following the same pattern the wider example pack uses for its own
// file-backed engines.
package fastaio
