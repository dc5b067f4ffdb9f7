package graph

import (
	"github.com/dborchard/orderedkv/pkg/algo/binheap"
)

// Inf marks unreachable vertices in distance slices.
const Inf = int(^uint(0) >> 1)

// Dijkstra returns shortest distances and predecessors from source over
// non-negative edge weights. Unreachable vertices carry Inf and -1.
func (g *Graph) Dijkstra(source int) (dist, prev []int) {
	n := len(g.adj)
	dist = make([]int, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = Inf
		prev[i] = -1
	}
	if !g.valid(source) {
		return dist, prev
	}
	dist[source] = 0

	done := make([]bool, n)
	pq := binheap.NewPriorityQueue[int, int]()
	pq.Push(source, 0)

	for !pq.IsEmpty() {
		v, d, _ := pq.Pop()
		if done[v] || d > dist[v] {
			continue
		}
		done[v] = true
		for _, e := range g.adj[v] {
			if alt := dist[v] + e.Weight; alt < dist[e.To] {
				dist[e.To] = alt
				prev[e.To] = v
				pq.Push(e.To, alt)
			}
		}
	}
	return dist, prev
}

// BellmanFord returns shortest distances and predecessors from source,
// handling negative weights. ok is false when a negative cycle is reachable.
func (g *Graph) BellmanFord(source int) (dist, prev []int, ok bool) {
	n := len(g.adj)
	dist = make([]int, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = Inf
		prev[i] = -1
	}
	if !g.valid(source) {
		return dist, prev, true
	}
	dist[source] = 0

	for round := 0; round < n-1; round++ {
		changed := false
		for v, edges := range g.adj {
			if dist[v] == Inf {
				continue
			}
			for _, e := range edges {
				if alt := dist[v] + e.Weight; alt < dist[e.To] {
					dist[e.To] = alt
					prev[e.To] = v
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for v, edges := range g.adj {
		if dist[v] == Inf {
			continue
		}
		for _, e := range edges {
			if dist[v]+e.Weight < dist[e.To] {
				return dist, prev, false
			}
		}
	}
	return dist, prev, true
}

// PathTo rebuilds the source-to-target path from a predecessor slice. Nil
// when the walk back from target never reaches source.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	path := []int{target}
	v := target
	for v != source {
		v = prev[v]
		if v == -1 || len(path) > len(prev) {
			return nil
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
