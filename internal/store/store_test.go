package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-scorepipe/internal/store"
)

func newStepGraph(t *testing.T) (graph.Graph[string, string], store.CustomStore[string, string]) {
	t.Helper()

	st := store.NewMemoryStore[string, string]()
	g := graph.NewWithStore[string, string](graph.StringHash, st, graph.Directed())
	for _, name := range []string{"start", "filter", "sort", "end"} {
		require.NoError(t, g.AddVertex(name))
	}
	require.NoError(t, g.AddEdge("start", "filter"))
	require.NoError(t, g.AddEdge("filter", "sort"))
	require.NoError(t, g.AddEdge("sort", "end"))

	return g, st
}

func TestMemoryStoreGraph(t *testing.T) {
	t.Parallel()

	g, st := newStepGraph(t)

	count, err := st.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	edges, err := st.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 3)

	path, err := graph.ShortestPath(g, "start", "end")
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "filter", "sort", "end"}, path)

	_, err = st.Edge("end", "start")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestMemoryStoreUpdateVertex(t *testing.T) {
	t.Parallel()

	_, st := newStepGraph(t)

	err := st.UpdateVertex("sort", func(p *graph.VertexProperties) {
		p.Attributes["color"] = "#ff0000"
		p.Weight = 2
	})
	require.NoError(t, err)

	_, props, err := st.Vertex("sort")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", props.Attributes["color"])
	assert.Equal(t, 2, props.Weight)

	require.ErrorIs(t, st.UpdateVertex("missing"), graph.ErrVertexNotFound)
}

func TestMemoryStoreRemoveVertex(t *testing.T) {
	t.Parallel()

	_, st := newStepGraph(t)

	require.ErrorIs(t, st.RemoveVertex("sort"), graph.ErrVertexHasEdges)
	require.ErrorIs(t, st.RemoveVertex("missing"), graph.ErrVertexNotFound)

	require.NoError(t, st.RemoveEdge("filter", "sort"))
	require.NoError(t, st.RemoveEdge("sort", "end"))
	require.NoError(t, st.RemoveVertex("sort"))

	_, _, err := st.Vertex("sort")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestMemoryStoreCreatesCycle(t *testing.T) {
	t.Parallel()

	_, st := newStepGraph(t)
	ms, ok := st.(*store.MemoryStore[string, string])
	require.True(t, ok)

	cycle, err := ms.CreatesCycle("end", "start")
	require.NoError(t, err)
	assert.True(t, cycle)

	cycle, err = ms.CreatesCycle("start", "end")
	require.NoError(t, err)
	assert.False(t, cycle)

	cycle, err = ms.CreatesCycle("sort", "sort")
	require.NoError(t, err)
	assert.True(t, cycle)

	_, err = ms.CreatesCycle("ghost", "start")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}
