package graph

// TopoSortKahn returns a topological order via repeated zero-in-degree
// removal. ok is false for undirected or cyclic graphs.
func (g *Graph) TopoSortKahn() (order []int, ok bool) {
	if !g.directed {
		return nil, false
	}
	n := len(g.adj)
	inDeg := make([]int, n)
	for _, edges := range g.adj {
		for _, e := range edges {
			inDeg[e.To]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if inDeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order = make([]int, 0, n)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, e := range g.adj[v] {
			inDeg[e.To]--
			if inDeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}
	if len(order) != n {
		return nil, false
	}
	return order, true
}

// TopoSortDFS returns a topological order via DFS finish times. ok is false
// for undirected or cyclic graphs.
func (g *Graph) TopoSortDFS() (order []int, ok bool) {
	if !g.directed || g.HasCycleDirected() {
		return nil, false
	}
	n := len(g.adj)
	visited := make([]bool, n)
	order = make([]int, 0, n)

	var visit func(v int)
	visit = func(v int) {
		visited[v] = true
		for _, e := range g.adj[v] {
			if !visited[e.To] {
				visit(e.To)
			}
		}
		order = append(order, v)
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			visit(v)
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, true
}
