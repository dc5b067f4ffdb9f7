package graph

// Matrix is an adjacency-matrix graph: O(1) edge checks, O(V^2) space.
// weights[i][j] == 0 means no edge; unweighted graphs store weight 1.
type Matrix struct {
	weights  [][]int
	n        int
	directed bool
	edges    int
}

// NewMatrix builds an n-vertex adjacency matrix.
func NewMatrix(n int, directed bool) *Matrix {
	if n < 0 {
		n = 0
	}
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
	}
	return &Matrix{weights: w, n: n, directed: directed}
}

func (m *Matrix) VertexCount() int { return m.n }

func (m *Matrix) EdgeCount() int { return m.edges }

func (m *Matrix) Directed() bool { return m.directed }

func (m *Matrix) valid(v int) bool { return v >= 0 && v < m.n }

// AddEdge inserts or updates an edge. Zero weights, self-loops, and bad
// vertices report false.
func (m *Matrix) AddEdge(src, dst, weight int) bool {
	if !m.valid(src) || !m.valid(dst) || src == dst || weight == 0 {
		return false
	}
	if m.weights[src][dst] == 0 {
		m.edges++
	}
	m.weights[src][dst] = weight
	if !m.directed {
		m.weights[dst][src] = weight
	}
	return true
}

// RemoveEdge drops an edge and reports whether it existed.
func (m *Matrix) RemoveEdge(src, dst int) bool {
	if !m.valid(src) || !m.valid(dst) || m.weights[src][dst] == 0 {
		return false
	}
	m.weights[src][dst] = 0
	if !m.directed {
		m.weights[dst][src] = 0
	}
	m.edges--
	return true
}

func (m *Matrix) HasEdge(src, dst int) bool {
	return m.valid(src) && m.valid(dst) && m.weights[src][dst] != 0
}

// Weight returns the edge weight, or false when absent.
func (m *Matrix) Weight(src, dst int) (int, bool) {
	if !m.HasEdge(src, dst) {
		return 0, false
	}
	return m.weights[src][dst], true
}

// Neighbors returns the vertices adjacent to v in ascending order.
func (m *Matrix) Neighbors(v int) []int {
	if !m.valid(v) {
		return nil
	}
	var out []int
	for u, w := range m.weights[v] {
		if w != 0 {
			out = append(out, u)
		}
	}
	return out
}

func (m *Matrix) OutDegree(v int) int { return len(m.Neighbors(v)) }

func (m *Matrix) InDegree(v int) int {
	if !m.valid(v) {
		return 0
	}
	deg := 0
	for u := 0; u < m.n; u++ {
		if m.weights[u][v] != 0 {
			deg++
		}
	}
	return deg
}

// Clear removes every edge.
func (m *Matrix) Clear() {
	for i := range m.weights {
		for j := range m.weights[i] {
			m.weights[i][j] = 0
		}
	}
	m.edges = 0
}

// BFS returns the breadth-first visit order from source.
func (m *Matrix) BFS(source int) []int {
	if !m.valid(source) {
		return nil
	}
	visited := make([]bool, m.n)
	order := make([]int, 0, m.n)
	queue := []int{source}
	visited[source] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for u := 0; u < m.n; u++ {
			if m.weights[v][u] != 0 && !visited[u] {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}
	return order
}

// DFS returns the depth-first visit order from source, lowest-numbered
// neighbor first.
func (m *Matrix) DFS(source int) []int {
	if !m.valid(source) {
		return nil
	}
	visited := make([]bool, m.n)
	order := make([]int, 0, m.n)
	var visit func(v int)
	visit = func(v int) {
		visited[v] = true
		order = append(order, v)
		for u := 0; u < m.n; u++ {
			if m.weights[v][u] != 0 && !visited[u] {
				visit(u)
			}
		}
	}
	visit(source)
	return order
}

// TransitiveClosure returns reach[i][j] = true when j is reachable from i,
// every vertex reaching itself, via Warshall's algorithm.
func (m *Matrix) TransitiveClosure() [][]bool {
	reach := make([][]bool, m.n)
	for i := range reach {
		reach[i] = make([]bool, m.n)
		reach[i][i] = true
		for j := 0; j < m.n; j++ {
			if m.weights[i][j] != 0 {
				reach[i][j] = true
			}
		}
	}
	for k := 0; k < m.n; k++ {
		for i := 0; i < m.n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < m.n; j++ {
				if reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}
	return reach
}

// FloydWarshall returns all-pairs shortest distances, Inf where unreachable.
// ok is false when a negative cycle exists.
func (m *Matrix) FloydWarshall() (dist [][]int, ok bool) {
	dist = make([][]int, m.n)
	for i := range dist {
		dist[i] = make([]int, m.n)
		for j := 0; j < m.n; j++ {
			switch {
			case i == j:
				dist[i][j] = 0
			case m.weights[i][j] != 0:
				dist[i][j] = m.weights[i][j]
			default:
				dist[i][j] = Inf
			}
		}
	}

	for k := 0; k < m.n; k++ {
		for i := 0; i < m.n; i++ {
			if dist[i][k] == Inf {
				continue
			}
			for j := 0; j < m.n; j++ {
				if dist[k][j] == Inf {
					continue
				}
				if alt := dist[i][k] + dist[k][j]; alt < dist[i][j] {
					dist[i][j] = alt
				}
			}
		}
	}

	for v := 0; v < m.n; v++ {
		if dist[v][v] < 0 {
			return dist, false
		}
	}
	return dist, true
}
