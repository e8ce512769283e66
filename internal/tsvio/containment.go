package tsvio

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	multierr "github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/katalvlaran/scaffoldgraph/graph"
	"github.com/katalvlaran/scaffoldgraph/seqtool"
)

// LoadContainment reads space-separated containment records from path (spec
// §6):
//
//	W CTG WELL START END   -> v.AddWell(WELL, START, END)
//	R CTG IVL_ID START END -> v.AddInterval({IVL_ID, [START,END)})
//
// A record naming a contig absent from names is a recoverable warning
// folded into the returned multierror, matching LoadEdges.
func LoadContainment(fs afero.Fs, path string, g *graph.Graph, names map[string]int) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("tsvio: opening %s: %w", path, err)
	}
	defer f.Close()

	var warnings error
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return fmt.Errorf("%w: line %d: want 5 fields, got %d", ErrMalformedRecord, lineNo, len(fields))
		}
		tag, ctg, idField, startField, endField := fields[0], fields[1], fields[2], fields[3], fields[4]
		if tag != "W" && tag != "R" {
			return fmt.Errorf("%w: line %d: tag %q, want W or R", ErrMalformedRecord, lineNo, tag)
		}
		id, err := strconv.Atoi(idField)
		if err != nil {
			return fmt.Errorf("%w: line %d: id %q: %v", ErrMalformedRecord, lineNo, idField, err)
		}
		start, err := strconv.Atoi(startField)
		if err != nil {
			return fmt.Errorf("%w: line %d: start %q: %v", ErrMalformedRecord, lineNo, startField, err)
		}
		end, err := strconv.Atoi(endField)
		if err != nil {
			return fmt.Errorf("%w: line %d: end %q: %v", ErrMalformedRecord, lineNo, endField, err)
		}

		vid, ok := names[ctg]
		if !ok {
			warnings = multierr.Append(warnings, fmt.Errorf("%w: line %d: %q", ErrUnknownContig, lineNo, ctg))

			continue
		}
		v, err := g.Vertex(vid)
		if err != nil {
			return err
		}

		if tag == "W" {
			v.AddWell(id, start, end)
		} else {
			v.AddInterval(graph.ContigInterval{ContigID: id, Interval: seqtool.Interval{Start: start, End: end}})
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("tsvio: reading %s: %w", path, err)
	}

	return warnings
}
