// File: vertex.go
// Role: vertex lifecycle, id allocation and metadata (spec §4.1, §3). The
// FlipVertex orientation primitive lives in flip.go.
package graph

import (
	"sort"

	"github.com/katalvlaran/scaffoldgraph/seqtool"
)

// NewVertexID allocates and returns the next vertex ID for this graph,
// without registering a vertex. Callers that need an ID before they have
// built the Vertex (the contraction engine allocates new_v's ID this way)
// use this directly; AddVertexSeq is the common case that allocates and
// inserts in one step.
//
// Complexity: O(1).
func (g *Graph) NewVertexID() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextVertexID
	g.nextVertexID++

	return id
}

// AddVertex inserts v into the graph's vertex index.
//
// Panics if v.ID collides with an existing vertex, matching the source's
// "panics if id collides" contract (spec §4.1) — a colliding ID is an
// invariant-6 violation, not a recoverable input error, since IDs are
// allocated by this package's own generators.
//
// Complexity: O(1).
func (g *Graph) AddVertex(v *Vertex) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.vertices[v.ID]; exists {
		panic(ErrVertexExists)
	}
	g.vertices[v.ID] = v
	if v.ID >= g.nextVertexID {
		g.nextVertexID = v.ID + 1
	}
}

// AddVertexSeq allocates a fresh ID, wraps seq in a new Vertex, registers it,
// and returns it. This is the common entry point for loaders.
//
// Complexity: O(1).
func (g *Graph) AddVertexSeq(seq []byte) *Vertex {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextVertexID
	g.nextVertexID++
	v := newVertex(id, seq)
	g.vertices[id] = v

	return v
}

// HasVertex reports whether id is present in the graph's vertex index.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID, or ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Vertex(id int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns every vertex, sorted by ID for determinism.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices currently in the graph.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// RemoveVertexFromIndex removes v from the vertex index only; it does not
// touch any edge. Callers (such as the contraction engine) must have
// already detached every incident edge — leaving one attached would violate
// invariant 3 for that edge.
//
// Complexity: O(1).
func (g *Graph) RemoveVertexFromIndex(v *Vertex) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[v.ID]; !ok {
		return ErrVertexNotFound
	}
	delete(g.vertices, v.ID)

	return nil
}

// AddWell records that well wellID covers [start,end) of v's sequence.
//
// Complexity: O(1).
func (v *Vertex) AddWell(wellID, start, end int) {
	if v.Wells == nil {
		v.Wells = make(map[int]seqtool.Interval)
	}
	v.Wells[wellID] = seqtool.Interval{Start: start, End: end}
}

// WellInterval returns the [start,end) interval recorded for wellID and
// whether it exists.
func (v *Vertex) WellInterval(wellID int) (seqtool.Interval, bool) {
	iv, ok := v.Wells[wellID]

	return iv, ok
}

// AddInterval appends a contig-interval record to v.
//
// Complexity: O(1) amortized.
func (v *Vertex) AddInterval(ivl ContigInterval) {
	v.Intervals = append(v.Intervals, ivl)
}

// MaxMetadataExtent returns the largest interval endpoint among v's wells and
// contig intervals, or 0 if v carries no metadata. Used to check invariant 5
// (len(v.Seq) >= max end of any attached interval).
//
// Complexity: O(len(Wells) + len(Intervals)).
func (v *Vertex) MaxMetadataExtent() int {
	max := 0
	for _, iv := range v.Wells {
		if iv.End > max {
			max = iv.End
		}
	}
	for _, ivl := range v.Intervals {
		if ivl.Interval.End > max {
			max = ivl.Interval.End
		}
	}

	return max
}

// SetContigsFromVertices synthesizes newV.Contigs from the ordered pair
// (v1, v2) per spec §4.6 step 6: if a vertex has no Contigs list yet, a
// single-entry one is synthesized from its own id/length/+ strand first;
// v2's entry intervals are always offset-shifted by shift, and when the
// contraction orientation was reverse its entries are also strand-flipped
// and put in reverse order. Exported for contract,
// which calls it only when ordering capture is enabled.
func SetContigsFromVertices(newV, v1, v2 *Vertex, shift int, reverseV2 bool) {
	c1 := v1.Contigs
	if c1 == nil {
		c1 = []ContigRecord{{
			ContigID:  v1.ID,
			Intervals: v1.Intervals,
			Length:    len(v1.Seq),
			Strand:    Plus,
		}}
	}

	c2 := v2.Contigs
	if c2 == nil {
		c2 = []ContigRecord{{
			ContigID:  v2.ID,
			Intervals: v2.Intervals,
			Length:    len(v2.Seq),
			Strand:    Plus,
		}}
	}

	shifted := make([]ContigRecord, len(c2))
	for i, rec := range c2 {
		nr := rec
		nr.Intervals = make([]ContigInterval, len(rec.Intervals))
		for j, ivl := range rec.Intervals {
			nr.Intervals[j] = ContigInterval{
				ContigID: ivl.ContigID,
				Interval: ivl.Interval.Shift(shift),
			}
		}
		if reverseV2 {
			nr.Strand = rec.Strand.Other()
		}
		shifted[i] = nr
	}

	if reverseV2 {
		// v2 was reverse-complemented into the splice, so its contigs now
		// read right-to-left: reverse the slice to restore left-to-right
		// order along new_v.Seq.
		for i, j := 0, len(shifted)-1; i < j; i, j = i+1, j-1 {
			shifted[i], shifted[j] = shifted[j], shifted[i]
		}
	}

	newV.Contigs = append(append([]ContigRecord{}, c1...), shifted...)
}
