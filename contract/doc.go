// Package contract implements the scaffold-graph contraction engine
// (component D): the contractability predicate, orientation normalization,
// single-edge contraction with sequence splicing and metadata merge, and the
// worklist-driven driver that repeatedly applies it to a fixpoint.
//
// contract depends only on graph and seqtool; it defines its own minimal
// Observer interface for progress reporting rather than importing a logging
// library directly, so the core algorithm stays free of ambient-stack
// dependencies (callers wire an hclog-backed Observer at the CLI layer).
package contract
