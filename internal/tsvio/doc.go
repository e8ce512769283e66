// Package tsvio reads and writes the tab-separated scaffold/overlap edge
// format and the space-separated containment record format spec §6
// defines, resolving vertex references against a name-to-ID map produced by
// fastaio.Load.
//
// The edge reader uses encoding/csv with Comma set to '\t': no repo in the
// example pack ships a dedicated TSV/CSV third-party library, so this one
// concern stays on the standard library (see DESIGN.md). Recoverable
// per-line problems (an edge below the support threshold is not one of
// these; an edge or containment record naming an unknown contig is) are
// collected with hashicorp/go-multierror rather than aborting the whole
// load, matching the aggregation pattern the wider pack uses for
// multi-item validation passes.
package tsvio
