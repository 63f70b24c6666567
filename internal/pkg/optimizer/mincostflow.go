package optimizer

import "math"

const costEpsilon = 1e-9

type edge struct {
	to       int
	capacity int
	cost     float64
	reverse  int
}

// Network is a residual graph for successive-shortest-path min-cost flow.
// Edge costs may be any finite real; shortest paths use Bellman-Ford so the
// negative residual edges created by augmentation are handled.
type Network struct {
	adj [][]edge
}

func NewNetwork(nodes int) *Network {
	return &Network{adj: make([][]edge, nodes)}
}

// AddEdge adds a directed arc and returns its index in from's adjacency list.
func (n *Network) AddEdge(from, to, capacity int, cost float64) int {
	n.adj[from] = append(n.adj[from], edge{to: to, capacity: capacity, cost: cost, reverse: len(n.adj[to])})
	n.adj[to] = append(n.adj[to], edge{to: from, capacity: 0, cost: -cost, reverse: len(n.adj[from]) - 1})

	return len(n.adj[from]) - 1
}

// Flow returns the flow pushed over the arc AddEdge returned as index.
func (n *Network) Flow(from, index int) int {
	e := n.adj[from][index]
	return n.adj[e.to][e.reverse].capacity
}

// MinCostFlow pushes up to maxFlow units from source to sink along cheapest
// augmenting paths and returns the flow achieved and its total cost.
func (n *Network) MinCostFlow(source, sink, maxFlow int) (int, float64) {
	var (
		flow int
		cost float64
	)

	nodes := len(n.adj)
	dist := make([]float64, nodes)
	prevNode := make([]int, nodes)
	prevEdge := make([]int, nodes)

	for flow < maxFlow {
		for i := range dist {
			dist[i] = math.Inf(1)
			prevNode[i] = -1
		}
		dist[source] = 0

		for round := 0; round < nodes-1; round++ {
			updated := false
			for u := 0; u < nodes; u++ {
				if math.IsInf(dist[u], 1) {
					continue
				}
				for i, e := range n.adj[u] {
					if e.capacity > 0 && dist[u]+e.cost < dist[e.to]-costEpsilon {
						dist[e.to] = dist[u] + e.cost
						prevNode[e.to] = u
						prevEdge[e.to] = i
						updated = true
					}
				}
			}
			if !updated {
				break
			}
		}

		if math.IsInf(dist[sink], 1) {
			break
		}

		push := maxFlow - flow
		for v := sink; v != source; v = prevNode[v] {
			push = min(push, n.adj[prevNode[v]][prevEdge[v]].capacity)
		}

		for v := sink; v != source; v = prevNode[v] {
			e := &n.adj[prevNode[v]][prevEdge[v]]
			e.capacity -= push
			n.adj[v][e.reverse].capacity += push
		}

		flow += push
		cost += float64(push) * dist[sink]
	}

	return flow, cost
}
