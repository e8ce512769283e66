package tsvio_test

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scaffoldgraph/graph"
	"github.com/katalvlaran/scaffoldgraph/internal/tsvio"
)

func setupTwoVertices(g *graph.Graph) map[string]int {
	v1 := g.AddVertexSeq([]byte("ACGT"))
	v2 := g.AddVertexSeq([]byte("TTTT"))

	return map[string]int{"ctgA": v1.ID, "ctgB": v2.ID}
}

func TestLoadEdgesParsesFieldsAndEndCodes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "e.tsv", []byte("S\tctgA\tctgB\tR\tL\tS\t3\t10\n"), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	require.NoError(t, tsvio.LoadEdges(fs, "e.tsv", g, names, 0))
	require.Equal(t, 1, g.EdgeCount())

	e := g.Edges()[0]
	require.Equal(t, graph.T, e.End1) // R -> T
	require.Equal(t, graph.H, e.End2) // L -> H
	require.Equal(t, 0, e.Orientation) // S -> 0
	require.Equal(t, 3, e.Support)
	require.Equal(t, 10, e.Distance)
}

func TestLoadEdgesDropsBelowMinSupport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "e.tsv", []byte("S\tctgA\tctgB\tR\tL\tS\t1\t0\n"), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	require.NoError(t, tsvio.LoadEdges(fs, "e.tsv", g, names, 2))
	require.Equal(t, 0, g.EdgeCount())
}

func TestLoadEdgesSumsDuplicateSupport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "e.tsv", []byte(
		"S\tctgA\tctgB\tR\tL\tS\t2\t0\n"+
			"S\tctgA\tctgB\tR\tL\tS\t5\t0\n",
	), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	require.NoError(t, tsvio.LoadEdges(fs, "e.tsv", g, names, 0))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 7, g.Edges()[0].Support)
}

func TestLoadEdgesSumsLowSupportDuplicateIntoAcceptedEdge(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "e.tsv", []byte(
		"S\tctgA\tctgB\tR\tL\tS\t2\t0\n"+
			"S\tctgA\tctgB\tR\tL\tS\t1\t0\n",
	), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	require.NoError(t, tsvio.LoadEdges(fs, "e.tsv", g, names, 2))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 3, g.Edges()[0].Support)
}

func TestLoadEdgesWarnsOnUnknownContig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "e.tsv", []byte("S\tctgA\tctgZ\tR\tL\tS\t1\t0\n"), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	err := tsvio.LoadEdges(fs, "e.tsv", g, names, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, tsvio.ErrUnknownContig)
	require.Equal(t, 0, g.EdgeCount())
}

func TestLoadEdgesRejectsInvalidType(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "e.tsv", []byte("X\tctgA\tctgB\tR\tL\tS\t1\t0\n"), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	err := tsvio.LoadEdges(fs, "e.tsv", g, names, 0)
	require.ErrorIs(t, err, tsvio.ErrInvalidEdgeType)
}

func TestWriteEdgesThenLoadRoundTripsOrientation(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("ACGT"))
	v2 := g.AddVertexSeq([]byte("TTTT"))
	e := &graph.Edge{ID: g.NewEdgeID(), V1: v1, V2: v2, End1: graph.T, End2: graph.H, Kind: graph.KindScaffold, Orientation: 1, Support: 4, Distance: 7}
	g.AttachEdge(e)

	require.NoError(t, tsvio.WriteEdges(fs, "out.tsv", g))

	g2 := graph.NewGraph()
	v1b := g2.AddVertexSeq([]byte("ACGT"))
	v2b := g2.AddVertexSeq([]byte("TTTT"))
	names2 := map[string]int{
		fmt.Sprintf("v%d", v1.ID): v1b.ID,
		fmt.Sprintf("v%d", v2.ID): v2b.ID,
	}

	require.NoError(t, tsvio.LoadEdges(fs, "out.tsv", g2, names2, 0))
	require.Equal(t, 1, e.Orientation)
	require.Equal(t, 1, g2.Edges()[0].Orientation)
}

func TestLoadContainmentAddsWellsAndIntervals(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.tsv", []byte("W ctgA 1 0 2\nR ctgA 9 1 3\n"), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	require.NoError(t, tsvio.LoadContainment(fs, "c.tsv", g, names))

	v, err := g.Vertex(names["ctgA"])
	require.NoError(t, err)
	iv, ok := v.WellInterval(1)
	require.True(t, ok)
	require.Equal(t, 0, iv.Start)
	require.Equal(t, 2, iv.End)
	require.Len(t, v.Intervals, 1)
	require.Equal(t, 9, v.Intervals[0].ContigID)
}

func TestLoadContainmentWarnsOnUnknownContig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.tsv", []byte("W ctgZ 1 0 2\n"), 0o644))

	g := graph.NewGraph()
	names := setupTwoVertices(g)

	err := tsvio.LoadContainment(fs, "c.tsv", g, names)
	require.ErrorIs(t, err, tsvio.ErrUnknownContig)
}
