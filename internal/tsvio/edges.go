package tsvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	multierr "github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/katalvlaran/scaffoldgraph/graph"
)

// Sentinel errors surfaced on malformed input. Per-line problems that don't
// indicate a malformed record (an unknown contig name) are collected as
// warnings instead of returned directly; see LoadEdges.
var (
	ErrInvalidEdgeType = errors.New("tsvio: invalid edge type, want O or S")
	ErrInvalidEndCode  = errors.New("tsvio: invalid end code, want L or R")
	ErrInvalidOrient   = errors.New("tsvio: invalid orientation code, want S or R")
	ErrMalformedRecord = errors.New("tsvio: malformed edge record")
	ErrUnknownContig   = errors.New("tsvio: edge references unknown contig")
)

// endCode maps the TSV's L/R end codes to graph ends: L -> H, R -> T (spec
// §6).
func endCode(code string) (graph.End, error) {
	switch code {
	case "L":
		return graph.H, nil
	case "R":
		return graph.T, nil
	default:
		return 0, ErrInvalidEndCode
	}
}

func endToCode(end graph.End) string {
	if end == graph.H {
		return "L"
	}

	return "R"
}

// orientCode maps the TSV's S/R orientation codes to 0/1, resolving
// spec.md §9 Open Question 2: the same mapping is used on read and on
// write (O=S <-> Orientation 0, O=R <-> Orientation 1) so that writing and
// re-reading a graph round-trips orientation, unlike the source this spec
// was distilled from.
func orientCode(code string) (int, error) {
	switch code {
	case "S":
		return 0, nil
	case "R":
		return 1, nil
	default:
		return 0, ErrInvalidOrient
	}
}

func orientToCode(orientation int) string {
	if orientation == 0 {
		return "S"
	}

	return "R"
}

// edgeKey identifies a scaffold edge by its unordered endpoint/end pair,
// used to sum supports of duplicate records (spec §6).
type edgeKey struct {
	v1, v2     int
	end1, end2 graph.End
}

// LoadEdges reads the eight-field edge TSV from path (TYPE CTG1 CTG2 C1 C2 O
// SUPPORT DISTANCE), resolving CTG1/CTG2 against names (typically produced
// by fastaio.Load), and attaches one edge per distinct endpoint/end pair to
// g. A record with SUPPORT < minSupport is dropped unless it duplicates an
// already-accepted edge. Duplicate records between the same endpoints at
// the same ends (in either column order) have their supports summed into
// that edge, keeping the first-seen orientation and distance.
//
// Malformed rows (wrong field count, invalid type/end/orientation code, a
// non-integer numeric field) abort the load and return that error directly.
// Rows naming a contig absent from names are recoverable: they are skipped
// and folded into the returned multierror rather than aborting the load.
func LoadEdges(fs afero.Fs, path string, g *graph.Graph, names map[string]int, minSupport int) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("tsvio: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = 8
	r.ReuseRecord = true

	merged := make(map[edgeKey]*graph.Edge)
	var warnings error

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("tsvio: reading %s: %w", path, err)
		}

		kind := rec[0]
		if kind != "O" && kind != "S" {
			return fmt.Errorf("%w: %q", ErrInvalidEdgeType, kind)
		}
		ctg1, ctg2 := rec[1], rec[2]
		end1, err := endCode(rec[3])
		if err != nil {
			return err
		}
		end2, err := endCode(rec[4])
		if err != nil {
			return err
		}
		orientation, err := orientCode(rec[5])
		if err != nil {
			return err
		}
		support, err := strconv.Atoi(rec[6])
		if err != nil {
			return fmt.Errorf("%w: support %q: %v", ErrMalformedRecord, rec[6], err)
		}
		distance, err := strconv.Atoi(rec[7])
		if err != nil {
			return fmt.Errorf("%w: distance %q: %v", ErrMalformedRecord, rec[7], err)
		}

		id1, ok := names[ctg1]
		if !ok {
			warnings = multierr.Append(warnings, fmt.Errorf("%w: %q", ErrUnknownContig, ctg1))

			continue
		}
		id2, ok := names[ctg2]
		if !ok {
			warnings = multierr.Append(warnings, fmt.Errorf("%w: %q", ErrUnknownContig, ctg2))

			continue
		}

		// A duplicate record sums into its already-accepted edge before
		// minSupport is ever consulted, so a later low-support duplicate
		// still grows that edge's total (matching the original loader's
		// load-then-filter order rather than filtering each record alone).
		key := edgeKey{v1: id1, v2: id2, end1: end1, end2: end2}
		if key.v1 > key.v2 || (key.v1 == key.v2 && key.end1 > key.end2) {
			key.v1, key.v2 = key.v2, key.v1
			key.end1, key.end2 = key.end2, key.end1
		}
		if existing, dup := merged[key]; dup {
			existing.Support += support
			continue
		}

		if support < minSupport {
			continue
		}

		v1, err := g.Vertex(id1)
		if err != nil {
			return err
		}
		v2, err := g.Vertex(id2)
		if err != nil {
			return err
		}

		eKind := graph.KindScaffold
		if kind == "O" {
			eKind = graph.KindOverlap
		}
		e := &graph.Edge{
			ID:          g.NewEdgeID(),
			V1:          v1,
			V2:          v2,
			End1:        end1,
			End2:        end2,
			Kind:        eKind,
			Orientation: orientation,
			Distance:    distance,
			Support:     support,
		}
		g.AttachEdge(e)
		merged[key] = e
	}

	return warnings
}

// WriteEdges emits every edge in g as an eight-field TSV record, naming
// vertices "v<id>" (fastaio.Write's convention), using the write-side
// inverse of LoadEdges' codes so load(write(g)) round-trips.
func WriteEdges(fs afero.Fs, path string, g *graph.Graph) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("tsvio: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	defer w.Flush()

	for _, e := range g.Edges() {
		kind := "S"
		if e.Kind == graph.KindOverlap {
			kind = "O"
		}
		rec := []string{
			kind,
			fmt.Sprintf("v%d", e.V1.ID),
			fmt.Sprintf("v%d", e.V2.ID),
			endToCode(e.End1),
			endToCode(e.End2),
			orientToCode(e.Orientation),
			strconv.Itoa(e.Support),
			strconv.Itoa(e.Distance),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
