//go:build unit

package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetwork_MinCostFlow_Closure(t *testing.T) {
	type arc struct {
		from, to, capacity int
		cost               float64
	}

	flowRequest := func(nodes int, arcs []arc, maxFlow, wantFlow int, wantCost float64) func(t *testing.T) {
		return func(t *testing.T) {
			n := NewNetwork(nodes)
			for _, a := range arcs {
				n.AddEdge(a.from, a.to, a.capacity, a.cost)
			}

			flow, cost := n.MinCostFlow(0, nodes-1, maxFlow)
			assert.Equal(t, wantFlow, flow)
			assert.InDelta(t, wantCost, cost, 1e-9)
		}
	}

	t.Run("single_arc", flowRequest(2, []arc{{0, 1, 3, 2.5}}, 2, 2, 5))
	t.Run("prefers_cheap_path", flowRequest(4, []arc{
		{0, 1, 1, 1}, {0, 2, 1, 5}, {1, 3, 1, 1}, {2, 3, 1, 1},
	}, 1, 1, 2))
	t.Run("capacity_forces_second_path", flowRequest(4, []arc{
		{0, 1, 1, 1}, {0, 2, 1, 5}, {1, 3, 1, 1}, {2, 3, 1, 1},
	}, 2, 2, 8))
	// the greedy first path 0-1-2-3 must be partly undone through the reverse arc
	t.Run("reroutes_through_residual", flowRequest(4, []arc{
		{0, 1, 1, 1}, {0, 2, 1, 4}, {1, 2, 1, 1}, {1, 3, 1, 4}, {2, 3, 1, 1},
	}, 2, 2, 10))
	t.Run("disconnected", flowRequest(3, []arc{{0, 1, 1, 1}}, 1, 0, 0))
	t.Run("zero_demand", flowRequest(2, []arc{{0, 1, 1, 1}}, 0, 0, 0))
}

func TestNetwork_Flow(t *testing.T) {
	n := NewNetwork(3)
	a := n.AddEdge(0, 1, 2, 1)
	b := n.AddEdge(1, 2, 1, 1)

	flow, _ := n.MinCostFlow(0, 2, 5)
	assert.Equal(t, 1, flow)
	assert.Equal(t, 1, n.Flow(0, a))
	assert.Equal(t, 1, n.Flow(1, b))
}
