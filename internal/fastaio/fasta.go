package fastaio

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/spf13/afero"

	"github.com/katalvlaran/scaffoldgraph/graph"
)

// lineWidth is the number of bases written per FASTA sequence line.
const lineWidth = 70

// Load reads a FASTA file from fs and creates one vertex per record in g, in
// file order. It returns a map from FASTA record name to the vertex ID
// assigned to it, which tsvio's loaders use to resolve CTG1/CTG2 references.
func Load(fs afero.Fs, path string, g *graph.Graph) (map[string]int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fastaio: opening %s: %w", path, err)
	}
	defer f.Close()

	names := make(map[string]int)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var curName string
	var curSeq bytes.Buffer
	flush := func() {
		if curName == "" {
			return
		}
		v := g.AddVertexSeq(append([]byte(nil), curSeq.Bytes()...))
		names[curName] = v.ID
		curSeq.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			curName = line[1:]

			continue
		}
		curSeq.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fastaio: reading %s: %w", path, err)
	}

	return names, nil
}

// Write emits one FASTA record per vertex in g, in ID order, named
// "v<id>", wrapped at lineWidth bases per line.
func Write(fs afero.Fs, path string, g *graph.Graph) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("fastaio: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, ">v%d\n", v.ID); err != nil {
			return err
		}
		for i := 0; i < len(v.Seq); i += lineWidth {
			end := i + lineWidth
			if end > len(v.Seq) {
				end = len(v.Seq)
			}
			if _, err := w.Write(v.Seq[i:end]); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return w.Flush()
}
