package contract_test

import (
	"testing"

	"github.com/katalvlaran/scaffoldgraph/contract"
	"github.com/katalvlaran/scaffoldgraph/graph"
	"github.com/katalvlaran/scaffoldgraph/seqtool"
	"github.com/stretchr/testify/require"
)

func newScaffoldEdge(g *graph.Graph, v1 *graph.Vertex, end1 graph.End, v2 *graph.Vertex, end2 graph.End, orientation, distance, support int) *graph.Edge {
	e := &graph.Edge{
		ID:          g.NewEdgeID(),
		V1:          v1,
		V2:          v2,
		End1:        end1,
		End2:        end2,
		Kind:        graph.KindScaffold,
		Orientation: orientation,
		Distance:    distance,
		Support:     support,
	}
	g.AttachEdge(e)

	return e
}

func TestContractSimpleTtoH(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 0, 10, 3)

	n, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())

	nv := g.Vertices()[0]
	require.Equal(t, "AAAANNNNNNNNNNCCCC", string(nv.Seq))
	require.NoError(t, g.CheckInvariants())
}

func TestContractOrientationOneReverseComplementsV2(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC")) // revcomp = GGGG
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 1, 0, 1)

	n, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	nv := g.Vertices()[0]
	require.Equal(t, "AAAANNNNNNNNNNGGGG", string(nv.Seq))
}

func TestContractNormalizesHtoHByFlippingV1(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAG")) // revcomp -> CTTT
	v2 := g.AddVertexSeq([]byte("CCCC"))
	newScaffoldEdge(g, v1, graph.H, v2, graph.H, 0, 0, 1)

	n, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	nv := g.Vertices()[0]
	require.Equal(t, "CTTTNNNNNNNNNNCCCC", string(nv.Seq))
}

func TestContractNormalizesTtoTByFlippingV2(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCG")) // revcomp -> CGGG
	newScaffoldEdge(g, v1, graph.T, v2, graph.T, 0, 0, 1)

	n, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	nv := g.Vertices()[0]
	require.Equal(t, "AAAANNNNNNNNNNCGGG", string(nv.Seq))
}

func TestContractNormalizesHtoTBySwappingRoles(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	newScaffoldEdge(g, v1, graph.H, v2, graph.T, 0, 0, 1)

	n, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	nv := g.Vertices()[0]
	// Roles swap: v2 becomes the new v1 (T side), v1 becomes the new v2
	// (H side).
	require.Equal(t, "CCCCNNNNNNNNNNAAAA", string(nv.Seq))
}

func TestContractMergesWellsAndIntervalsWithShift(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	v1.AddWell(1, 0, 2)
	v2.AddWell(2, 1, 3)
	v1.AddInterval(graph.ContigInterval{ContigID: 100, Interval: seqtool.Interval{Start: 0, End: 1}})
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 0, 0, 1)

	_, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)

	nv := g.Vertices()[0]
	iv1, ok := nv.WellInterval(1)
	require.True(t, ok)
	require.Equal(t, 0, iv1.Start)
	require.Equal(t, 2, iv1.End)

	shift := len("AAAA") + 10
	iv2, ok := nv.WellInterval(2)
	require.True(t, ok)
	require.Equal(t, 1+shift, iv2.Start)
	require.Equal(t, 3+shift, iv2.End)
}

func TestContractStoreOrderingSynthesizesContigs(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 0, 0, 1)

	_, err := contract.Contract(g, contract.Options{StoreOrdering: true})
	require.NoError(t, err)

	nv := g.Vertices()[0]
	require.Len(t, nv.Contigs, 2)
	require.Equal(t, graph.Plus, nv.Contigs[0].Strand)
	require.Equal(t, graph.Plus, nv.Contigs[1].Strand)
}

func TestContractStoreOrderingFlipsV2StrandOnReverseOrientation(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 1, 0, 1)

	_, err := contract.Contract(g, contract.Options{StoreOrdering: true})
	require.NoError(t, err)

	nv := g.Vertices()[0]
	require.Len(t, nv.Contigs, 2)
	require.Equal(t, graph.Minus, nv.Contigs[1].Strand)
}

func TestContractChainProducesOneVertex(t *testing.T) {
	// Scenario: a path of three vertices joined by two uniquely-incident
	// scaffold edges contracts down to a single vertex (fixpoint).
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	v3 := g.AddVertexSeq([]byte("GGGG"))
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 0, 0, 1)
	newScaffoldEdge(g, v2, graph.T, v3, graph.H, 0, 0, 1)

	n, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.NoError(t, g.CheckInvariants())
}

func TestContractDoesNotContractNonUniqueDegree(t *testing.T) {
	// v2 has two edges at its H end (from v1 and v3), so neither is
	// contractable: the degree-one predicate blocks both.
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	v3 := g.AddVertexSeq([]byte("GGGG"))
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 0, 0, 1)
	newScaffoldEdge(g, v3, graph.T, v2, graph.H, 0, 0, 1)

	n, err := contract.Contract(g, contract.Options{})
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
}

func TestContractDropsParallelEdgeBeforeContracting(t *testing.T) {
	// e1 (T-H) is the unique edge at each of those specific ends, so it
	// passes the contractability predicate even though a second edge f
	// also links v1 and v2 at a different pair of ends. Step 1 of
	// contraction must purge f before splicing, or the post-contraction
	// graph would carry a stray loop on new_v.
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	e1 := newScaffoldEdge(g, v1, graph.T, v2, graph.H, 0, 0, 1)
	f := newScaffoldEdge(g, v1, graph.H, v2, graph.T, 0, 0, 1)

	n, err := contract.Contract(g, contract.Options{Edges: []*graph.Edge{e1, f}})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.NoError(t, g.CheckInvariants())
}

func TestContractRejectsOverlapEdge(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	e := &graph.Edge{ID: g.NewEdgeID(), V1: v1, V2: v2, End1: graph.T, End2: graph.H, Kind: graph.KindOverlap}
	g.AttachEdge(e)

	_, err := contract.Contract(g, contract.Options{Edges: []*graph.Edge{e}})
	require.ErrorIs(t, err, graph.ErrOverlapContractionUnsupported)
}

type recordingObserver struct {
	calls []int
}

func (r *recordingObserver) OnProgress(examined, contracted int) {
	r.calls = append(r.calls, examined)
}

func TestContractCallsObserverAtLeastOnceOnCompletion(t *testing.T) {
	g := graph.NewGraph()
	v1 := g.AddVertexSeq([]byte("AAAA"))
	v2 := g.AddVertexSeq([]byte("CCCC"))
	newScaffoldEdge(g, v1, graph.T, v2, graph.H, 0, 0, 1)

	obs := &recordingObserver{}
	_, err := contract.Contract(g, contract.Options{Observer: obs})
	require.NoError(t, err)
	require.NotEmpty(t, obs.calls)
}
