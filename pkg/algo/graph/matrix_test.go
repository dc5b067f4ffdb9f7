package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixEdges(t *testing.T) {
	m := NewMatrix(4, false)
	require.True(t, m.AddEdge(0, 1, 5))
	require.True(t, m.AddEdge(1, 2, 3))

	assert.Equal(t, 2, m.EdgeCount())
	assert.True(t, m.HasEdge(1, 0)) // mirrored
	w, ok := m.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 3, w)

	require.True(t, m.AddEdge(0, 1, 9)) // update in place
	assert.Equal(t, 2, m.EdgeCount())
	w, _ = m.Weight(1, 0)
	assert.Equal(t, 9, w)

	assert.False(t, m.AddEdge(0, 0, 1))
	assert.False(t, m.AddEdge(0, 1, 0)) // zero weight means no edge
	assert.False(t, m.AddEdge(-1, 3, 1))
	assert.False(t, m.AddEdge(0, 4, 1))
}

func TestMatrixRemoveEdge(t *testing.T) {
	m := NewMatrix(3, false)
	m.AddEdge(0, 1, 1)
	m.AddEdge(1, 2, 1)

	require.True(t, m.RemoveEdge(1, 0))
	assert.False(t, m.HasEdge(0, 1))
	assert.False(t, m.HasEdge(1, 0))
	assert.Equal(t, 1, m.EdgeCount())
	assert.False(t, m.RemoveEdge(0, 1))

	d := NewMatrix(2, true)
	d.AddEdge(0, 1, 1)
	assert.False(t, d.RemoveEdge(1, 0))
	assert.True(t, d.RemoveEdge(0, 1))
	assert.Equal(t, 0, d.EdgeCount())
}

func TestMatrixNeighborsAndDegrees(t *testing.T) {
	m := NewMatrix(4, true)
	m.AddEdge(0, 2, 1)
	m.AddEdge(0, 1, 1)
	m.AddEdge(3, 1, 1)

	assert.Equal(t, []int{1, 2}, m.Neighbors(0)) // ascending
	assert.Nil(t, m.Neighbors(9))
	assert.Equal(t, 2, m.OutDegree(0))
	assert.Equal(t, 2, m.InDegree(1))
	assert.Equal(t, 0, m.InDegree(0))
}

func TestMatrixTraversal(t *testing.T) {
	m := NewMatrix(4, false)
	m.AddEdge(0, 1, 1)
	m.AddEdge(0, 2, 1)
	m.AddEdge(1, 3, 1)

	assert.Equal(t, []int{0, 1, 2, 3}, m.BFS(0))
	assert.Equal(t, []int{0, 1, 3, 2}, m.DFS(0))
	assert.Nil(t, m.BFS(-1))
	assert.Nil(t, m.DFS(4))
}

func TestMatrixClear(t *testing.T) {
	m := NewMatrix(3, false)
	m.AddEdge(0, 1, 1)
	m.AddEdge(1, 2, 1)

	m.Clear()
	assert.Equal(t, 0, m.EdgeCount())
	assert.False(t, m.HasEdge(0, 1))
	assert.Equal(t, 3, m.VertexCount())
}

func TestTransitiveClosure(t *testing.T) {
	m := NewMatrix(4, true)
	m.AddEdge(0, 1, 1)
	m.AddEdge(1, 2, 1)

	reach := m.TransitiveClosure()
	assert.True(t, reach[0][2])
	assert.True(t, reach[1][2])
	assert.True(t, reach[3][3]) // self-reachable
	assert.False(t, reach[2][0])
	assert.False(t, reach[0][3])
}

func TestFloydWarshall(t *testing.T) {
	m := NewMatrix(4, true)
	m.AddEdge(0, 1, 5)
	m.AddEdge(0, 3, 10)
	m.AddEdge(1, 2, 3)
	m.AddEdge(2, 3, 1)

	dist, ok := m.FloydWarshall()
	require.True(t, ok)
	assert.Equal(t, 0, dist[0][0])
	assert.Equal(t, 8, dist[0][2])
	assert.Equal(t, 9, dist[0][3]) // via 1 and 2, beats the direct 10
	assert.Equal(t, Inf, dist[3][0])
}

func TestFloydWarshallMatchesDijkstra(t *testing.T) {
	m := NewMatrix(5, true)
	g := New(5, true)
	edges := [][3]int{{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5}, {3, 4, 3}}
	for _, e := range edges {
		m.AddEdge(e[0], e[1], e[2])
		g.AddEdge(e[0], e[1], e[2])
	}

	dist, ok := m.FloydWarshall()
	require.True(t, ok)
	for src := 0; src < 5; src++ {
		single, _ := g.Dijkstra(src)
		assert.Equal(t, single, dist[src], "source %d", src)
	}
}

func TestFloydWarshallNegativeCycle(t *testing.T) {
	m := NewMatrix(3, true)
	m.AddEdge(0, 1, 1)
	m.AddEdge(1, 2, -2)
	m.AddEdge(2, 1, 1)

	_, ok := m.FloydWarshall()
	assert.False(t, ok)

	// Negative edges without a cycle are fine.
	n := NewMatrix(3, true)
	n.AddEdge(0, 1, 4)
	n.AddEdge(0, 2, 5)
	n.AddEdge(1, 2, -3)
	dist, ok := n.FloydWarshall()
	require.True(t, ok)
	assert.Equal(t, 1, dist[0][2])
}
