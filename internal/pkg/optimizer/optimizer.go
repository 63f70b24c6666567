// Package optimizer assigns charter legs to aircraft so that every leg is
// flown exactly once and the total repositioning distance is minimal.
//
// The covering problem is solved as a min-cost flow on
// source -> aircraft -> leg -> sink, where each leg->sink arc has capacity 1
// and aircraft have unbounded capacity. The solver's own accumulated path cost
// is the reported objective.
package optimizer

import (
	"net/http"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
)

const DefaultPenaltyNM = 5000.0

var ErrInfeasible = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "no feasible assignment",
}

// DistanceFunc returns nautical miles between two airports, ok false if unknown.
type DistanceFunc func(from, to string) (float64, bool)

type Optimizer struct {
	distance  DistanceFunc
	penaltyNM float64
}

// New builds an optimizer. Unknown airports cost penaltyNM instead of failing.
func New(distance DistanceFunc, penaltyNM float64) *Optimizer {
	if penaltyNM <= 0 {
		penaltyNM = DefaultPenaltyNM
	}

	return &Optimizer{
		distance:  distance,
		penaltyNM: penaltyNM,
	}
}

// RepositionNM is the empty-leg distance for an aircraft to reach a leg start.
func (o *Optimizer) RepositionNM(position, start string) float64 {
	d, ok := o.distance(position, start)
	if !ok {
		return o.penaltyNM
	}

	return d
}

func (o *Optimizer) Assign(aircraft []dto.OptimizerAircraft, legs []dto.OptimizerLeg) (dto.OptimizerResponse, error) {
	// node layout: source, aircraft..., legs..., sink
	source := 0
	aircraftNode := func(a int) int { return 1 + a }
	legNode := func(l int) int { return 1 + len(aircraft) + l }
	sink := 1 + len(aircraft) + len(legs)

	network := NewNetwork(sink + 1)
	for a := range aircraft {
		network.AddEdge(source, aircraftNode(a), len(legs), 0)
	}

	arcs := make([][]int, len(aircraft))
	for a, ac := range aircraft {
		arcs[a] = make([]int, len(legs))
		for l, leg := range legs {
			arcs[a][l] = network.AddEdge(aircraftNode(a), legNode(l), 1, o.RepositionNM(ac.Position, leg.Start))
		}
	}

	for l := range legs {
		network.AddEdge(legNode(l), sink, 1, 0)
	}

	flow, objective := network.MinCostFlow(source, sink, len(legs))
	if flow < len(legs) {
		return dto.OptimizerResponse{}, ErrInfeasible
	}

	assignment := make(map[string][]string, len(aircraft))
	for a, ac := range aircraft {
		assignment[ac.Tail] = make([]string, 0)
		for l, leg := range legs {
			if network.Flow(aircraftNode(a), arcs[a][l]) > 0 {
				assignment[ac.Tail] = append(assignment[ac.Tail], leg.ID)
			}
		}
	}

	return dto.OptimizerResponse{
		Assignment:  assignment,
		ObjectiveNM: objective,
	}, nil
}
