// File: flip.go
// Role: the FlipVertex orientation primitive (spec §4.1).
package graph

import "github.com/katalvlaran/scaffoldgraph/seqtool"

// mirrorInterval reflects [s,e) within a sequence of length L: positions
// measured from the left become positions measured from the right.
func mirrorInterval(iv seqtool.Interval, length int) seqtool.Interval {
	return seqtool.Interval{Start: length - iv.End, End: length - iv.Start}
}

// FlipVertex reverse-complements v's sequence, swaps its head/tail adjacency
// sets, flips the connection end of every edge incident to v, and mirrors
// every piece of positional metadata (wells, intervals, contig strands and
// offsets) so invariant 5 (length >= metadata extent) still holds afterward.
// Orientation of any incident overlap edge is inverted to match.
//
// FlipVertex is its own inverse (round-trip law R1): flipping twice restores
// the original sequence, adjacency, connections and metadata.
//
// Complexity: O(len(v.Seq) + deg(v) + len(v.Wells) + len(v.Intervals) + len(v.Contigs)).
func (g *Graph) FlipVertex(v *Vertex) {
	length := len(v.Seq)
	v.Seq = seqtool.ReverseComplement(v.Seq)

	for wellID, iv := range v.Wells {
		v.Wells[wellID] = mirrorInterval(iv, length)
	}
	for i, ivl := range v.Intervals {
		v.Intervals[i] = ContigInterval{
			ContigID: ivl.ContigID,
			Interval: mirrorInterval(ivl.Interval, length),
		}
	}
	if v.Contigs != nil {
		flipped := make([]ContigRecord, len(v.Contigs))
		n := len(v.Contigs)
		for i, rec := range v.Contigs {
			nr := rec
			nr.Strand = rec.Strand.Other()
			nr.Intervals = make([]ContigInterval, len(rec.Intervals))
			for j, ivl := range rec.Intervals {
				nr.Intervals[j] = ContigInterval{
					ContigID: ivl.ContigID,
					Interval: mirrorInterval(ivl.Interval, length),
				}
			}
			flipped[n-1-i] = nr
		}
		v.Contigs = flipped
	}

	// Collect every edge incident to v exactly once (a loop is incident via
	// both its H and T adjacency-set entries) before mutating any
	// connection, so each edge's End1/End2 is flipped exactly once per
	// endpoint regardless of which adjacency set it was found through.
	incident := make(map[int]*Edge, len(v.HeadEdges)+len(v.TailEdges))
	for id, e := range v.HeadEdges {
		incident[id] = e
	}
	for id, e := range v.TailEdges {
		incident[id] = e
	}

	for _, e := range incident {
		if e.V1 == v {
			e.End1 = e.End1.Other()
		}
		if e.V2 == v {
			e.End2 = e.End2.Other()
		}
		if e.Kind == KindOverlap {
			e.Orientation ^= 1
		}
	}

	newHead := make(map[int]*Edge, len(incident))
	newTail := make(map[int]*Edge, len(incident))
	for id, e := range incident {
		if (e.V1 == v && e.End1 == H) || (e.V2 == v && e.End2 == H) {
			newHead[id] = e
		}
		if (e.V1 == v && e.End1 == T) || (e.V2 == v && e.End2 == T) {
			newTail[id] = e
		}
	}
	v.HeadEdges = newHead
	v.TailEdges = newTail
}
