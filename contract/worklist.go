package contract

import "github.com/katalvlaran/scaffoldgraph/graph"

// worklist is the mutable edge set the contraction driver pops from (spec
// §4.7): O(1) insertion, O(1) pop-any, O(1) discard-by-id.
type worklist struct {
	edges map[int]*graph.Edge
}

func newWorklist(edges []*graph.Edge) *worklist {
	w := &worklist{edges: make(map[int]*graph.Edge, len(edges))}
	for _, e := range edges {
		w.edges[e.ID] = e
	}

	return w
}

func (w *worklist) len() int {
	return len(w.edges)
}

// pop removes and returns an arbitrary edge from the worklist. The caller
// must only call pop when len() > 0.
func (w *worklist) pop() *graph.Edge {
	for id, e := range w.edges {
		delete(w.edges, id)

		return e
	}

	return nil
}

// discard removes e from the worklist if present; it is a no-op otherwise.
func (w *worklist) discard(e *graph.Edge) {
	delete(w.edges, e.ID)
}
