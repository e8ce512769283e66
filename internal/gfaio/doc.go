// Package gfaio emits the graph as GFA (Graphical Fragment Assembly) for
// external visualization (spec §6), in two flavors: a generic GFA1 segment
// graph whose segments carry a length (`LN`) tag, and a Bandage-flavored
// variant that adds the depth (`dp`) tag Bandage's coloring reads.
//
// gfaio is write-only: the graph has no GFA loader, matching spec.md §1's
// classification of GFA emission as an external, adapter-only concern.
package gfaio
