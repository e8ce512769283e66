package graph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/scaffoldgraph/seqtool"
)

// Sentinel errors for graph operations. Callers should use errors.Is to
// branch on semantics; messages are not part of the contract.
var (
	// ErrVertexExists is the value AddVertex panics with when the given ID
	// is already present in the graph (vertex IDs are never reused,
	// invariant 6).
	ErrVertexExists = errors.New("graph: vertex id already present")

	// ErrVertexNotFound is returned when an operation references a vertex
	// ID absent from the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeExists is the value AddEdge panics with when the given edge ID
	// already exists.
	ErrEdgeExists = errors.New("graph: edge id already present")

	// ErrEdgeNotFound is returned when an operation references an edge ID
	// absent from the graph.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEndpointNotInGraph is an invariant-3 violation: an edge names a
	// vertex that is not in the graph's vertex index.
	ErrEndpointNotInGraph = errors.New("graph: edge endpoint not present in graph")

	// ErrInvalidEnd describes an End value other than H or T. No operation
	// in this package checks End values or returns it.
	ErrInvalidEnd = errors.New("graph: invalid end, want H or T")

	// ErrInvalidOrientation is returned when a scaffold edge carries an
	// orientation outside {0,1}.
	ErrInvalidOrientation = errors.New("graph: invalid orientation, want 0 or 1")

	// ErrOverlapContractionUnsupported signals that contraction of an
	// overlap edge was requested; this is a declared non-goal (spec §9).
	ErrOverlapContractionUnsupported = errors.New("graph: overlap-edge contraction is not implemented")

	// ErrNotIncident is an adjacency-consistency (invariant 1) violation:
	// an edge was expected in a vertex's adjacency set but was absent.
	ErrNotIncident = errors.New("graph: edge not incident to expected vertex/end")
)

// End identifies one of the two ends of a Vertex's sequence.
type End uint8

const (
	// H is the head (left) end of a vertex.
	H End = iota
	// T is the tail (right) end of a vertex.
	T
)

// Other returns the opposite end.
func (e End) Other() End {
	if e == H {
		return T
	}

	return H
}

// String renders the end as "H" or "T" (and "?" for any invalid value, which
// should never occur on a value produced by this package).
func (e End) String() string {
	switch e {
	case H:
		return "H"
	case T:
		return "T"
	default:
		return "?"
	}
}

// Kind discriminates the two edge variants spec.md defines.
type Kind uint8

const (
	// KindScaffold is a scaffold edge: estimated gap, orientation, support.
	KindScaffold Kind = iota
	// KindOverlap is an overlap edge. Overlap-edge contraction is an
	// explicit non-goal (spec §9); overlap edges may otherwise exist in a
	// graph (e.g. loaded, displayed) without restriction.
	KindOverlap
)

// ContigInterval is a (contig ID, start, end) record covering a region of a
// vertex's sequence, as ingested from a containment record.
type ContigInterval struct {
	ContigID int
	Interval seqtool.Interval
}

// Strand is the orientation of a contig merged into a vertex's sequence.
type Strand uint8

const (
	// Plus means the contig's original orientation was preserved.
	Plus Strand = iota
	// Minus means the contig was reverse-complemented when merged.
	Minus
)

// Other returns the opposite strand.
func (s Strand) Other() Strand {
	if s == Plus {
		return Minus
	}

	return Plus
}

// ContigRecord describes one contig merged into a vertex's sequence, in the
// left-to-right order the vertex's Contigs slice maintains.
type ContigRecord struct {
	ContigID  int
	Intervals []ContigInterval
	Length    int
	Strand    Strand
}

// Vertex is a single assembled DNA sequence plus its head/tail adjacency.
//
// Seq, Wells, Intervals and Contigs are owned exclusively by the Vertex;
// HeadEdges/TailEdges hold back-references only (the Graph and the edges
// themselves are the owners of Edge values).
type Vertex struct {
	// ID uniquely identifies this vertex within its Graph, stable across
	// operations that keep the vertex alive.
	ID int

	// Seq is the DNA sequence over {A,C,G,T,N}. len(Seq) >= 1.
	Seq []byte

	// HeadEdges and TailEdges are disjoint sets of edges incident at the H
	// and T ends respectively, keyed by Edge.ID.
	HeadEdges map[int]*Edge
	TailEdges map[int]*Edge

	// Wells maps well ID to its [start,end) interval in Seq coordinates.
	Wells map[int]seqtool.Interval

	// Intervals is the set of contig-interval records covering regions of
	// Seq.
	Intervals []ContigInterval

	// Contigs, when non-nil, is the ordered left-to-right list of contigs
	// merged into this vertex. Populated only when contraction is run with
	// ordering capture enabled.
	Contigs []ContigRecord
}

// newVertex allocates a Vertex with initialized adjacency and well maps.
func newVertex(id int, seq []byte) *Vertex {
	return &Vertex{
		ID:        id,
		Seq:       seq,
		HeadEdges: make(map[int]*Edge),
		TailEdges: make(map[int]*Edge),
		Wells:     make(map[int]seqtool.Interval),
	}
}

// edgeSet returns the adjacency set at the given end.
func (v *Vertex) edgeSet(end End) map[int]*Edge {
	if end == H {
		return v.HeadEdges
	}

	return v.TailEdges
}

// Edge is an unordered bidirected link between two vertex ends.
//
// The connection of each endpoint vertex to the End it attaches at is held
// in End1/End2, paired with V1/V2 by endpoint role (1 or 2) rather than
// keyed by vertex identity: since a loop has V1 == V2, two distinct ends of
// the same vertex must be independently representable.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID int

	// V1, V2 are the two incident vertices. V1 == V2 for a loop.
	V1, V2 *Vertex

	// End1, End2 are the ends of V1 and V2 respectively that this edge
	// attaches to.
	End1, End2 End

	// Kind discriminates scaffold vs. overlap edges.
	Kind Kind

	// Distance is the estimated gap in bases (scaffold edges only).
	// Preserved but, per spec §4.6/§9, not used to size the splice pad.
	Distance int

	// Orientation is 0 (same strand) or 1 (reverse), scaffold edges only.
	Orientation int

	// Support is the integer count of observations backing this edge
	// (scaffold edges only), >= 1.
	Support int
}

// OtherVertex returns the endpoint of e that is not v. For a loop
// (e.V1 == e.V2 == v) it returns v itself, matching the source's
// "other_vertex" semantics.
func (e *Edge) OtherVertex(v *Vertex) *Vertex {
	if v == e.V1 {
		return e.V2
	}

	return e.V1
}

// IsLoop reports whether the edge's two endpoints are the same vertex.
func (e *Edge) IsLoop() bool {
	return e.V1 == e.V2
}

// Graph owns the vertex and edge catalogs of a bidirected string graph and
// generates their IDs.
//
// mu guards every field below; it is held for the duration of any mutating
// call so that read-only adapters (FASTA/GFA emitters) can run concurrently
// with each other between mutations. Contraction takes no lock of its own
// beyond the per-call locking of the methods it calls, so it relies on
// exclusive access to the Graph for its whole run (see contract.Contract).
type Graph struct {
	mu sync.RWMutex

	vertices map[int]*Vertex
	edges    map[int]*Edge

	nextVertexID int
	nextEdgeID   int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int]*Vertex),
		edges:    make(map[int]*Edge),
	}
}
