// Package graph implements adjacency-list and adjacency-matrix graphs over
// integer vertices 0..n-1, with the standard traversal, shortest-path, MST
// and strongly-connected-component algorithms.
package graph

// Edge is one weighted arc in an adjacency list.
type Edge struct {
	To     int
	Weight int
}

type Graph struct {
	adj      [][]Edge
	directed bool
	edges    int
}

// New builds a graph with n isolated vertices.
func New(n int, directed bool) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		adj:      make([][]Edge, n),
		directed: directed,
	}
}

func (g *Graph) VertexCount() int { return len(g.adj) }

func (g *Graph) EdgeCount() int { return g.edges }

func (g *Graph) Directed() bool { return g.directed }

func (g *Graph) valid(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge inserts an edge (both directions when undirected). Duplicate
// edges update the weight in place. Self-loops and bad vertices report
// false.
func (g *Graph) AddEdge(src, dst, weight int) bool {
	if !g.valid(src) || !g.valid(dst) || src == dst {
		return false
	}
	if g.setWeight(src, dst, weight) {
		if !g.directed {
			g.setWeight(dst, src, weight)
		}
		return true
	}
	g.adj[src] = append(g.adj[src], Edge{To: dst, Weight: weight})
	if !g.directed {
		g.adj[dst] = append(g.adj[dst], Edge{To: src, Weight: weight})
	}
	g.edges++
	return true
}

func (g *Graph) setWeight(src, dst, weight int) bool {
	for i := range g.adj[src] {
		if g.adj[src][i].To == dst {
			g.adj[src][i].Weight = weight
			return true
		}
	}
	return false
}

func (g *Graph) HasEdge(src, dst int) bool {
	if !g.valid(src) || !g.valid(dst) {
		return false
	}
	for _, e := range g.adj[src] {
		if e.To == dst {
			return true
		}
	}
	return false
}

// Weight returns the edge weight, or false when the edge is absent.
func (g *Graph) Weight(src, dst int) (int, bool) {
	if !g.valid(src) || !g.valid(dst) {
		return 0, false
	}
	for _, e := range g.adj[src] {
		if e.To == dst {
			return e.Weight, true
		}
	}
	return 0, false
}

func (g *Graph) OutDegree(v int) int {
	if !g.valid(v) {
		return 0
	}
	return len(g.adj[v])
}

func (g *Graph) InDegree(v int) int {
	if !g.valid(v) {
		return 0
	}
	deg := 0
	for _, edges := range g.adj {
		for _, e := range edges {
			if e.To == v {
				deg++
			}
		}
	}
	return deg
}

// Neighbors returns the adjacency list of v. Callers must not mutate it.
func (g *Graph) Neighbors(v int) []Edge {
	if !g.valid(v) {
		return nil
	}
	return g.adj[v]
}
