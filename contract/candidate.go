package contract

import "github.com/katalvlaran/scaffoldgraph/graph"

// contractable reports whether e is a contraction candidate (spec §4.4):
// not a loop, and each endpoint has exactly one incident edge at the end e
// attaches to — namely e itself. It also requires both endpoints to still
// be present in g, resolving spec.md §9 Open Question 4: a vertex that has
// already been consumed by an earlier contraction this driver pass is
// checked for graph membership before its adjacency sets are consulted.
func contractable(g *graph.Graph, e *graph.Edge) bool {
	if e.IsLoop() {
		return false
	}
	if !g.HasVertex(e.V1.ID) || !g.HasVertex(e.V2.ID) {
		return false
	}

	return len(edgeSetAt(e.V1, e.End1)) == 1 && len(edgeSetAt(e.V2, e.End2)) == 1
}

// edgeSetAt returns v's adjacency set at end, using only graph's exported
// surface (HeadEdges/TailEdges are exported fields; edgeSet itself is not).
func edgeSetAt(v *graph.Vertex, end graph.End) map[int]*graph.Edge {
	if end == graph.H {
		return v.HeadEdges
	}

	return v.TailEdges
}

// normalizeOrientation reorients e so it connects v1 at T to v2 at H (spec
// §4.5), returning the edge's v1/v2 in splice order. Both ends H flips v1;
// both ends T flips v2; H-T swaps endpoint roles via an edge flip that
// leaves the set of graph edges unchanged; T-H is already normalized.
func normalizeOrientation(g *graph.Graph, e *graph.Edge) (v1, v2 *graph.Vertex) {
	switch {
	case e.End1 == graph.H && e.End2 == graph.H:
		g.FlipVertex(e.V1)
	case e.End1 == graph.T && e.End2 == graph.T:
		g.FlipVertex(e.V2)
	case e.End1 == graph.H && e.End2 == graph.T:
		e.V1, e.V2 = e.V2, e.V1
		e.End1, e.End2 = e.End2, e.End1
	}

	return e.V1, e.V2
}
