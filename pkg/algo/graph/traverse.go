package graph

// BFS returns the breadth-first visit order from source. An invalid source
// yields nil.
func (g *Graph) BFS(source int) []int {
	if !g.valid(source) {
		return nil
	}
	visited := make([]bool, len(g.adj))
	order := make([]int, 0, len(g.adj))
	queue := []int{source}
	visited[source] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, e := range g.adj[v] {
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	return order
}

// DFS returns the depth-first visit order from source, iterative with an
// explicit stack. Neighbors are visited in adjacency order.
func (g *Graph) DFS(source int) []int {
	if !g.valid(source) {
		return nil
	}
	visited := make([]bool, len(g.adj))
	order := make([]int, 0, len(g.adj))
	g.dfsFrom(source, visited, &order)
	return order
}

func (g *Graph) dfsFrom(source int, visited []bool, order *[]int) {
	stack := []int{source}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		*order = append(*order, v)
		// Push in reverse so the first neighbor is processed first.
		for i := len(g.adj[v]) - 1; i >= 0; i-- {
			if !visited[g.adj[v][i].To] {
				stack = append(stack, g.adj[v][i].To)
			}
		}
	}
}

// DFSFull covers every vertex, restarting from each unvisited one in index
// order.
func (g *Graph) DFSFull() []int {
	visited := make([]bool, len(g.adj))
	order := make([]int, 0, len(g.adj))
	for v := range g.adj {
		if !visited[v] {
			g.dfsFrom(v, visited, &order)
		}
	}
	return order
}

// IsConnected reports whether every vertex is reachable from vertex 0,
// ignoring edge direction. Empty graphs count as connected.
func (g *Graph) IsConnected() bool {
	n := len(g.adj)
	if n == 0 {
		return true
	}

	// Union by repeated BFS over an undirected view.
	visited := make([]bool, n)
	undirected := g
	if g.directed {
		undirected = New(n, false)
		for v, edges := range g.adj {
			for _, e := range edges {
				undirected.AddEdge(v, e.To, e.Weight)
			}
		}
	}
	for _, v := range undirected.BFS(0) {
		visited[v] = true
	}
	for _, ok := range visited {
		if !ok {
			return false
		}
	}
	return true
}

// HasCycleUndirected detects a cycle in an undirected graph via parent-aware
// DFS.
func (g *Graph) HasCycleUndirected() bool {
	visited := make([]bool, len(g.adj))
	for v := range g.adj {
		if !visited[v] && g.cycleUndirected(v, -1, visited) {
			return true
		}
	}
	return false
}

func (g *Graph) cycleUndirected(v, parent int, visited []bool) bool {
	visited[v] = true
	for _, e := range g.adj[v] {
		if !visited[e.To] {
			if g.cycleUndirected(e.To, v, visited) {
				return true
			}
		} else if e.To != parent {
			return true
		}
	}
	return false
}

// HasCycleDirected detects a cycle in a directed graph via three-color DFS.
func (g *Graph) HasCycleDirected() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]byte, len(g.adj))
	var visit func(v int) bool
	visit = func(v int) bool {
		color[v] = gray
		for _, e := range g.adj[v] {
			switch color[e.To] {
			case gray:
				return true
			case white:
				if visit(e.To) {
					return true
				}
			}
		}
		color[v] = black
		return false
	}
	for v := range g.adj {
		if color[v] == white && visit(v) {
			return true
		}
	}
	return false
}

// IsDAG reports whether a directed graph is acyclic. Undirected graphs are
// never DAGs here.
func (g *Graph) IsDAG() bool {
	return g.directed && !g.HasCycleDirected()
}
