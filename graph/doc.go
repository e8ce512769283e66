// Package graph implements the bidirected string graph that the scaffold
// assembler contracts into longer sequences.
//
// A Graph owns a set of Vertex records (each a DNA sequence plus its two
// ends, H for head and T for tail) and a set of Edge records connecting
// specific ends of specific vertices. Vertices and edges are indexed by
// monotonically increasing integer IDs, never reused within the lifetime of
// a Graph (invariant 6).
//
// The package maintains the following invariants when its API is used as
// documented (AddEdge, AddWell, AddInterval and RemoveVertexFromIndex leave
// part of the bookkeeping to the caller and do not check them), and
// CheckInvariants verifies them:
//
//   - invariant 1: every edge is recorded in exactly the adjacency set of
//     each endpoint matching that edge's connection at that endpoint.
//   - invariant 2: a vertex's HeadEdges and TailEdges sets are disjoint.
//   - invariant 3: every vertex referenced by an edge is present in the
//     graph's vertex index.
//   - invariant 5: a vertex's sequence is always at least as long as the
//     extent of any well or contig interval attached to it.
//
// Vertices and edges are destroyed only through RemoveEdge/
// RemoveVertexFromIndex; a vertex's adjacency sets hold back-references
// only — the caller (usually the contraction engine) must detach every
// incident edge before removing a vertex from the index.
//
// Graph is safe for concurrent readers (FASTA/GFA emitters may run
// alongside each other) but mutation is single-writer: callers that mutate
// a Graph (loaders, the contraction engine) must not do so concurrently
// with other mutators, matching spec's single-threaded, synchronous
// concurrency model.
package graph
