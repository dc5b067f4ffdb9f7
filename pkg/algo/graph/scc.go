package graph

// SCCTarjan returns the strongly connected components of a directed graph
// in reverse topological order of the condensation. Nil for undirected
// graphs.
func (g *Graph) SCCTarjan() [][]int {
	if !g.directed {
		return nil
	}
	n := len(g.adj)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	var (
		stack  []int
		next   int
		result [][]int
	)
	var connect func(v int)
	connect = func(v int) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, e := range g.adj[v] {
			if index[e.To] == -1 {
				connect(e.To)
				if low[e.To] < low[v] {
					low[v] = low[e.To]
				}
			} else if onStack[e.To] && index[e.To] < low[v] {
				low[v] = index[e.To]
			}
		}

		if low[v] == index[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			result = append(result, comp)
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			connect(v)
		}
	}
	return result
}

// SCCKosaraju returns the strongly connected components via two DFS passes
// over the graph and its transpose. Nil for undirected graphs.
func (g *Graph) SCCKosaraju() [][]int {
	if !g.directed {
		return nil
	}
	n := len(g.adj)

	// First pass: record finish order.
	visited := make([]bool, n)
	finish := make([]int, 0, n)
	var visit func(v int)
	visit = func(v int) {
		visited[v] = true
		for _, e := range g.adj[v] {
			if !visited[e.To] {
				visit(e.To)
			}
		}
		finish = append(finish, v)
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			visit(v)
		}
	}

	// Second pass: DFS the transpose in reverse finish order.
	transpose := New(n, true)
	for v, edges := range g.adj {
		for _, e := range edges {
			transpose.AddEdge(e.To, v, e.Weight)
		}
	}

	for i := range visited {
		visited[i] = false
	}
	var result [][]int
	var collect func(v int, comp *[]int)
	collect = func(v int, comp *[]int) {
		visited[v] = true
		*comp = append(*comp, v)
		for _, e := range transpose.adj[v] {
			if !visited[e.To] {
				collect(e.To, comp)
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		v := finish[i]
		if !visited[v] {
			var comp []int
			collect(v, &comp)
			result = append(result, comp)
		}
	}
	return result
}
