// File: edge.go
// Role: edge lifecycle, reconnect, and edge-between-vertices queries
// (spec §4.1).
package graph

import "sort"

// NewEdgeID allocates and returns the next edge ID for this graph.
//
// Complexity: O(1).
func (g *Graph) NewEdgeID() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextEdgeID
	g.nextEdgeID++

	return id
}

// AddEdge inserts e into the graph's edge index.
//
// Per spec §4.1, AddEdge only populates the graph's own edge catalog: the
// caller is responsible for also inserting e into e.V1's and e.V2's
// adjacency sets at the correct end (loaders do this directly; the
// contraction engine does it through Reconnect). Panics if e.ID collides,
// for the same invariant-6 reason as AddVertex.
//
// Complexity: O(1).
func (g *Graph) AddEdge(e *Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.edges[e.ID]; exists {
		panic(ErrEdgeExists)
	}
	if _, ok := g.vertices[e.V1.ID]; !ok {
		panic(ErrEndpointNotInGraph)
	}
	if _, ok := g.vertices[e.V2.ID]; !ok {
		panic(ErrEndpointNotInGraph)
	}
	g.edges[e.ID] = e
	if e.ID >= g.nextEdgeID {
		g.nextEdgeID = e.ID + 1
	}
}

// AttachEdge is AddEdge plus the adjacency bookkeeping loaders need: it
// inserts e into the graph's edge index and into both endpoints' adjacency
// sets at e.End1/e.End2. Using AttachEdge instead of AddEdge followed by
// manual adjacency insertion keeps invariant 1 from ever being observably
// violated between the two steps.
//
// Complexity: O(1).
func (g *Graph) AttachEdge(e *Edge) {
	g.AddEdge(e)
	e.V1.edgeSet(e.End1)[e.ID] = e
	if e.V2 != e.V1 || e.End2 != e.End1 {
		e.V2.edgeSet(e.End2)[e.ID] = e
	}
}

// HasEdge reports whether edge id is present in the graph's edge index.
//
// Complexity: O(1).
func (g *Graph) HasEdge(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) Edge(id int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge, sorted by ID for determinism.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges currently in the graph.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// RemoveEdge removes e from the graph's edge index and from both endpoints'
// adjacency sets.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(e *Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.edges[e.ID]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, e.ID)
	delete(e.V1.edgeSet(e.End1), e.ID)
	delete(e.V2.edgeSet(e.End2), e.ID)

	return nil
}

// Reconnect replaces one endpoint of e from vOld to vNew, keeping the same
// end (H stays H, T stays T): it updates e.V1/e.V2 and e.End1/e.End2, and
// moves e out of vOld's adjacency set and into vNew's corresponding set.
//
// Complexity: O(1).
func (g *Graph) Reconnect(e *Edge, vOld, vNew *Vertex) error {
	var end End
	switch vOld {
	case e.V1:
		end = e.End1
	case e.V2:
		end = e.End2
	default:
		return ErrNotIncident
	}

	if _, ok := vOld.edgeSet(end)[e.ID]; !ok {
		return ErrNotIncident
	}
	delete(vOld.edgeSet(end), e.ID)

	if e.V1 == vOld {
		e.V1 = vNew
	}
	if e.V2 == vOld {
		e.V2 = vNew
	}
	vNew.edgeSet(end)[e.ID] = e

	return nil
}

// HasEdgeBetween reports whether some edge connects v1 at end1 to v2 at
// end2 (in either endpoint order), used as a sanity check before
// contraction (spec §4.1).
//
// Complexity: O(deg(v1,end1)).
func (g *Graph) HasEdgeBetween(v1 *Vertex, end1 End, v2 *Vertex, end2 End) bool {
	for _, e := range v1.edgeSet(end1) {
		if e.V1 == v1 && e.End1 == end1 && e.V2 == v2 && e.End2 == end2 {
			return true
		}
		if e.V2 == v1 && e.End2 == end1 && e.V1 == v2 && e.End1 == end2 {
			return true
		}
	}

	return false
}
