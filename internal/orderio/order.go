package orderio

import (
	"bufio"
	"fmt"

	"github.com/spf13/afero"

	"github.com/katalvlaran/scaffoldgraph/graph"
)

func strandCode(s graph.Strand) string {
	if s == graph.Plus {
		return "+"
	}

	return "-"
}

// Write emits one line per vertex carrying a non-nil Contigs list:
//
//	v<id>	<contig-id>:<strand> <contig-id>:<strand> ...
//
// in left-to-right order along the vertex's sequence. Vertices with no
// captured ordering (StoreOrdering was off, or the vertex was never part of
// a contraction) are omitted.
func Write(fs afero.Fs, path string, g *graph.Graph) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("orderio: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range g.Vertices() {
		if v.Contigs == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "v%d\t", v.ID); err != nil {
			return err
		}
		for i, rec := range v.Contigs {
			if i > 0 {
				if err := w.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d:%s", rec.ContigID, strandCode(rec.Strand)); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return w.Flush()
}
