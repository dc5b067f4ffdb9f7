package graph

import (
	"sort"

	"github.com/dborchard/orderedkv/pkg/algo/binheap"
)

// MSTEdge is one edge of a spanning tree.
type MSTEdge struct {
	From   int
	To     int
	Weight int
}

// MSTKruskal returns a minimum spanning tree of an undirected graph and its
// total weight. ok is false for directed or disconnected graphs.
func (g *Graph) MSTKruskal() (tree []MSTEdge, total int, ok bool) {
	if g.directed || len(g.adj) == 0 {
		return nil, 0, false
	}

	var all []MSTEdge
	for v, edges := range g.adj {
		for _, e := range edges {
			if v < e.To { // each undirected edge once
				all = append(all, MSTEdge{From: v, To: e.To, Weight: e.Weight})
			}
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Weight < all[j].Weight })

	parent := make([]int, len(g.adj))
	for i := range parent {
		parent[i] = i
	}
	var find func(x int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	for _, e := range all {
		rf, rt := find(e.From), find(e.To)
		if rf == rt {
			continue
		}
		parent[rf] = rt
		tree = append(tree, e)
		total += e.Weight
	}
	if len(tree) != len(g.adj)-1 {
		return nil, 0, false
	}
	return tree, total, true
}

// MSTPrim grows a minimum spanning tree from vertex 0 using a priority
// queue. ok is false for directed or disconnected graphs.
func (g *Graph) MSTPrim() (tree []MSTEdge, total int, ok bool) {
	if g.directed || len(g.adj) == 0 {
		return nil, 0, false
	}

	n := len(g.adj)
	inTree := make([]bool, n)
	pq := binheap.NewPriorityQueue[MSTEdge, int]()

	inTree[0] = true
	for _, e := range g.adj[0] {
		pq.Push(MSTEdge{From: 0, To: e.To, Weight: e.Weight}, e.Weight)
	}

	for !pq.IsEmpty() && len(tree) < n-1 {
		edge, _, _ := pq.Pop()
		if inTree[edge.To] {
			continue
		}
		inTree[edge.To] = true
		tree = append(tree, edge)
		total += edge.Weight
		for _, e := range g.adj[edge.To] {
			if !inTree[e.To] {
				pq.Push(MSTEdge{From: edge.To, To: e.To, Weight: e.Weight}, e.Weight)
			}
		}
	}
	if len(tree) != n-1 {
		return nil, 0, false
	}
	return tree, total, true
}
