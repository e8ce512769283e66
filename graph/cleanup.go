// File: cleanup.go
// Role: loop and parallel-edge cleanup passes (spec §4.3).
package graph

// RemoveLoops removes every edge whose two endpoints are the same vertex
// from the graph and from both of that vertex's adjacency sets (an edge
// attached at two different ends of one vertex is removed from both its
// head and tail sets).
//
// Complexity: O(E).
func (g *Graph) RemoveLoops() int {
	removed := 0
	for _, e := range g.Edges() {
		if e.IsLoop() {
			delete(e.V1.HeadEdges, e.ID)
			delete(e.V1.TailEdges, e.ID)
			_ = g.RemoveEdge(e)
			removed++
		}
	}

	return removed
}

// RemoveParallelEdges keeps the first edge seen between each unordered pair
// of endpoint vertices and removes the rest, detaching them from both
// endpoints. Off by default: callers invoke it explicitly (spec §4.3).
//
// Complexity: O(E).
func (g *Graph) RemoveParallelEdges() int {
	type pair struct{ a, b int }
	seen := make(map[pair]bool)
	removed := 0

	for _, e := range g.Edges() {
		a, b := e.V1.ID, e.V2.ID
		if a > b {
			a, b = b, a
		}
		key := pair{a, b}
		if seen[key] {
			_ = g.RemoveEdge(e)
			removed++
			continue
		}
		seen[key] = true
	}

	return removed
}
