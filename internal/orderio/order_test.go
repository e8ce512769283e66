package orderio_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scaffoldgraph/contract"
	"github.com/katalvlaran/scaffoldgraph/graph"
	"github.com/katalvlaran/scaffoldgraph/internal/orderio"
)

func TestWriteOmitsVerticesWithoutCapturedOrdering(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := graph.NewGraph()
	g.AddVertexSeq([]byte("ACGT"))

	require.NoError(t, orderio.Write(fs, "out.tsv", g))

	out, err := afero.ReadFile(fs, "out.tsv")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestWriteEmitsCapturedOrderingAfterContraction(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	e := &graph.Edge{ID: g.NewEdgeID(), V1: v1, V2: v2, End1: graph.T, End2: graph.H, Kind: graph.KindScaffold, Orientation: 0, Support: 1}
	g.AttachEdge(e)

	_, err := contract.Contract(g, contract.Options{StoreOrdering: true})
	require.NoError(t, err)

	require.NoError(t, orderio.Write(fs, "out.tsv", g))
	out, err := afero.ReadFile(fs, "out.tsv")
	require.NoError(t, err)
	require.Contains(t, string(out), "0:+ 1:+")
}
