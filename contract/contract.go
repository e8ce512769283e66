// File: contract.go
// Role: single-edge scaffold contraction (spec §4.6) and the worklist-driven
// driver that applies it to a fixpoint (spec §4.7).
package contract

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/scaffoldgraph/graph"
	"github.com/katalvlaran/scaffoldgraph/seqtool"
)

// pad is the fixed ten-N gap marker spliced between two contracted
// sequences, independent of the contracted edge's distance estimate (spec
// §4.6 step 4; the distance field is preserved on the edge only for
// metadata the caller may log, never to size the splice — see spec.md §9).
var pad = bytes.Repeat([]byte{'N'}, 10)

// Options configures a single driver invocation of Contract.
type Options struct {
	// Edges restricts the initial worklist to this set. A nil slice means
	// "every edge currently in the graph" (spec §4.7 step 2).
	Edges []*graph.Edge

	// StoreOrdering enables contig-ordering capture (spec §4.6 step 6).
	StoreOrdering bool

	// Observer receives progress notifications. A nil Observer is
	// replaced with NopObserver.
	Observer Observer
}

// Contract runs the contraction driver over g: it first removes loops, then
// repeatedly pops a candidate edge from the worklist and contracts it if
// still present and contractable, until the worklist is empty. It returns
// the number of contractions performed.
//
// Contract takes no lock of its own (see graph.Graph's concurrency note):
// the driver performs many interdependent mutations per contraction and
// cannot safely interleave with any other caller of g, so the caller must
// give it exclusive access to g for the whole call.
//
// Complexity: O(E) worklist pops, each O(1) amortized except the splice
// itself, which is O(len(v1.seq) + len(v2.seq)).
func Contract(g *graph.Graph, opts Options) (int, error) {
	obs := opts.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	g.RemoveLoops()

	seed := opts.Edges
	if seed == nil {
		seed = g.Edges()
	}
	w := newWorklist(seed)

	contracted := 0
	examined := 0
	for w.len() > 0 {
		e := w.pop()
		examined++
		if examined%progressInterval == 0 {
			obs.OnProgress(examined, contracted)
		}

		if !g.HasEdge(e.ID) {
			continue
		}
		if !contractable(g, e) {
			continue
		}
		if _, err := contractScaffoldEdge(g, e, w, opts.StoreOrdering); err != nil {
			return contracted, err
		}
		contracted++
	}
	obs.OnProgress(examined, contracted)

	return contracted, nil
}

// contractScaffoldEdge performs the eleven-step contraction of e (spec
// §4.6), folding v1 and v2 into a single new vertex and rewiring every
// other edge formerly incident to either. w is the live worklist being
// driven by Contract: steps that remove edges from the graph also discard
// them from w so the driver never re-examines a dead edge.
func contractScaffoldEdge(g *graph.Graph, e *graph.Edge, w *worklist, storeOrdering bool) (*graph.Vertex, error) {
	if e.Kind == graph.KindOverlap {
		return nil, graph.ErrOverlapContractionUnsupported
	}

	// Step 1: drop other parallel edges between e's endpoints. Per spec.md
	// §9 Open Question 3, each parallel edge f is discarded from the
	// worklist individually here; e itself has already been popped by
	// Contract.
	for _, f := range parallelEdges(g, e) {
		w.discard(f)
		_ = g.RemoveEdge(f)
	}

	// Step 2: normalize orientation so e connects v1:T to v2:H.
	v1, v2 := normalizeOrientation(g, e)

	if e.Orientation != 0 && e.Orientation != 1 {
		return nil, graph.ErrInvalidOrientation
	}
	reverse := e.Orientation == 1

	// Step 3: allocate the new vertex.
	newID := g.NewVertexID()

	// Step 4: splice sequence.
	v2Seq := v2.Seq
	if reverse {
		v2Seq = seqtool.ReverseComplement(v2.Seq)
	}
	seq := make([]byte, 0, len(v1.Seq)+len(pad)+len(v2Seq))
	seq = append(seq, v1.Seq...)
	seq = append(seq, pad...)
	seq = append(seq, v2Seq...)

	newV := &graph.Vertex{
		ID:        newID,
		Seq:       seq,
		HeadEdges: make(map[int]*graph.Edge),
		TailEdges: make(map[int]*graph.Edge),
		Wells:     make(map[int]seqtool.Interval),
	}

	// Step 5: inherit adjacency (minus e, which is removed in step 10).
	for id, f := range v1.HeadEdges {
		if id != e.ID {
			newV.HeadEdges[id] = f
		}
	}
	for id, f := range v2.TailEdges {
		if id != e.ID {
			newV.TailEdges[id] = f
		}
	}

	// Step 6: merge metadata. shift is where v2's frame begins in new_v.
	shift := len(v1.Seq) + len(pad)
	for id, iv := range v1.Wells {
		newV.Wells[id] = iv
	}
	for id, iv := range v2.Wells {
		newV.Wells[id] = iv.Shift(shift)
	}
	newV.Intervals = append(newV.Intervals, v1.Intervals...)
	for _, ivl := range v2.Intervals {
		newV.Intervals = append(newV.Intervals, graph.ContigInterval{
			ContigID: ivl.ContigID,
			Interval: ivl.Interval.Shift(shift),
		})
	}
	if storeOrdering {
		graph.SetContigsFromVertices(newV, v1, v2, shift, reverse)
	}

	// Step 7: register new_v.
	g.AddVertex(newV)

	// Step 8: rewire edges formerly incident to v1 at H.
	for id, f := range v1.HeadEdges {
		if id == e.ID {
			continue
		}
		if f.OtherVertex(v1) == v2 {
			w.discard(f)
			_ = g.RemoveEdge(f)
			delete(newV.HeadEdges, f.ID)

			continue
		}
		if err := g.Reconnect(f, v1, newV); err != nil {
			return nil, fmt.Errorf("contract: rewiring v1 head edge %d: %w", f.ID, err)
		}
	}

	// Step 9: rewire edges formerly incident to v2 at T.
	for id, f := range v2.TailEdges {
		if id == e.ID {
			continue
		}
		if err := g.Reconnect(f, v2, newV); err != nil {
			return nil, fmt.Errorf("contract: rewiring v2 tail edge %d: %w", f.ID, err)
		}
	}

	// Step 10: remove e, then v1 and v2.
	if err := g.RemoveEdge(e); err != nil {
		return nil, fmt.Errorf("contract: removing contracted edge %d: %w", e.ID, err)
	}
	w.discard(e)
	if err := g.RemoveVertexFromIndex(v1); err != nil {
		return nil, fmt.Errorf("contract: removing v1 %d: %w", v1.ID, err)
	}
	if err := g.RemoveVertexFromIndex(v2); err != nil {
		return nil, fmt.Errorf("contract: removing v2 %d: %w", v2.ID, err)
	}

	// Step 11.
	return newV, nil
}

// parallelEdges returns every edge other than e connecting e's two
// endpoints, scanning only e.V1's adjacency sets rather than the whole
// graph.
//
// Complexity: O(deg(v1)).
func parallelEdges(g *graph.Graph, e *graph.Edge) []*graph.Edge {
	var out []*graph.Edge
	for _, set := range []map[int]*graph.Edge{e.V1.HeadEdges, e.V1.TailEdges} {
		for id, f := range set {
			if id == e.ID {
				continue
			}
			if f.OtherVertex(e.V1) == e.V2 {
				out = append(out, f)
			}
		}
	}

	return out
}
