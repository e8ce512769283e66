package gfaio

import (
	"bufio"
	"fmt"

	"github.com/spf13/afero"

	"github.com/katalvlaran/scaffoldgraph/graph"
)

// gfaEnd renders a graph.End as the GFA link orientation symbol: the tail
// (3') end is the conventional "+" exit/entry, the head (5') end is "-".
func gfaEnd(end graph.End) string {
	if end == graph.T {
		return "+"
	}

	return "-"
}

func segmentName(id int) string {
	return fmt.Sprintf("v%d", id)
}

func writeHeaderAndSegments(w *bufio.Writer, g *graph.Graph, bandage bool) error {
	if _, err := w.WriteString("H\tVN:Z:1.0\n"); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		if bandage {
			depth := bandageDepth(v)
			if _, err := fmt.Fprintf(w, "S\t%s\t%s\tLN:i:%d\tdp:f:%.2f\n",
				segmentName(v.ID), v.Seq, len(v.Seq), depth); err != nil {
				return err
			}

			continue
		}
		if _, err := fmt.Fprintf(w, "S\t%s\t%s\tLN:i:%d\n", segmentName(v.ID), v.Seq, len(v.Seq)); err != nil {
			return err
		}
	}

	return nil
}

// bandageDepth approximates Bandage's coverage-depth tag from the average
// support of v's incident edges (scaffold and overlap alike, counted once
// per adjacency-set entry), defaulting to 1.0 for an isolated vertex.
func bandageDepth(v *graph.Vertex) float64 {
	total, n := 0, 0
	for _, e := range v.HeadEdges {
		total += e.Support
		n++
	}
	for _, e := range v.TailEdges {
		total += e.Support
		n++
	}
	if n == 0 {
		return 1.0
	}

	return float64(total) / float64(n)
}

func writeLinks(w *bufio.Writer, g *graph.Graph) error {
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "L\t%s\t%s\t%s\t%s\t0M\n",
			segmentName(e.V1.ID), gfaEnd(e.End1), segmentName(e.V2.ID), gfaEnd(e.End2)); err != nil {
			return err
		}
	}

	return nil
}

// WriteGeneric emits g as a generic GFA1 graph: one H header line, one S
// segment line per vertex, one L link line per edge.
func WriteGeneric(fs afero.Fs, path string, g *graph.Graph) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("gfaio: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeHeaderAndSegments(w, g, false); err != nil {
		return err
	}
	if err := writeLinks(w, g); err != nil {
		return err
	}

	return w.Flush()
}

// WriteBandage emits g as GFA1 with the additional dp (depth) tag Bandage
// uses to color segments by coverage.
func WriteBandage(fs afero.Fs, path string, g *graph.Graph) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("gfaio: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeHeaderAndSegments(w, g, true); err != nil {
		return err
	}
	if err := writeLinks(w, g); err != nil {
		return err
	}

	return w.Flush()
}
