package pricing

import (
	"fmt"
	"math"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/fleet"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/geo"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/performance"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/utils"
)

// Engine prices a single charter leg. It holds only read-only catalogs, so one
// Engine can serve any number of concurrent requests.
type Engine struct {
	airports *geo.Registry
	fleet    *fleet.Catalog
}

func NewEngine(airports *geo.Registry, jets *fleet.Catalog) *Engine {
	return &Engine{
		airports: airports,
		fleet:    jets,
	}
}

// Price computes a full quote or fails with ErrUnknownAirport,
// ErrUnknownAircraftModel or a runway infeasibility error.
func (e *Engine) Price(req dto.QuoteRequest) (dto.Quote, error) {
	depart, ok := e.airports.Lookup(req.Depart)
	if !ok {
		return dto.Quote{}, fmt.Errorf("depart %q: %w", req.Depart, ErrUnknownAirport)
	}

	arrive, ok := e.airports.Lookup(req.Arrive)
	if !ok {
		return dto.Quote{}, fmt.Errorf("arrive %q: %w", req.Arrive, ErrUnknownAirport)
	}

	jet, ok := e.fleet.Lookup(req.Model)
	if !ok {
		return dto.Quote{}, fmt.Errorf("model %q: %w", req.Model, ErrUnknownAircraftModel)
	}

	// runway gate uses the worse of the two ends
	daDepart := performance.DensityAltitudeFt(depart.ElevationFt, req.OATCDepart)
	daArrive := performance.DensityAltitudeFt(arrive.ElevationFt, req.OATCArrive)
	perfFactor := math.Max(
		performance.RunwayCorrectionFactor(daDepart),
		performance.RunwayCorrectionFactor(daArrive),
	)
	requiredRunway := int(float64(jet.MinRunwayFt) * perfFactor)

	runwayLimit := min(depart.RunwayFt, arrive.RunwayFt)
	if requiredRunway > runwayLimit {
		return dto.Quote{}, newRunwayInfeasibleError(jet.Model, requiredRunway, runwayLimit)
	}

	distance, _ := e.airports.Distance(depart.ICAO, arrive.ICAO)
	windRatio := performance.WindComponentRatio(float64(req.AvgWindKts), jet.SpeedKts)
	airTimeHr := distance / (jet.SpeedKts * (1 - windRatio))
	taxiHr := float64(req.TaxiMin) / 60
	blockHr := airTimeHr + taxiHr

	repositionHr := 0.0
	if req.RepositionNM != 0 {
		repositionHr = req.RepositionNM / jet.SpeedKts
	}

	docTotal := (blockHr + repositionHr) * jet.DOCPerHour
	airportFees := depart.FeesUSD + arrive.FeesUSD
	costBasis := docTotal + airportFees

	return dto.Quote{
		Route: dto.Route{
			Depart:     depart.ICAO,
			Arrive:     arrive.ICAO,
			DistanceNM: int(distance),
		},
		Aircraft: dto.Aircraft{
			Category: jet.Category,
			Model:    jet.Model,
			SpeedKts: jet.SpeedKts,
		},
		Assumptions: dto.Assumptions{
			AvgWindKts:   req.AvgWindKts,
			TaxiMin:      req.TaxiMin,
			RepositionNM: req.RepositionNM,
			MarginPct:    req.MarginPct,
			OATCDepart:   req.OATCDepart,
			OATCArrive:   req.OATCArrive,
			DensityAltitudeFt: dto.DensityAltitude{
				Depart: daDepart,
				Arrive: daArrive,
			},
			RequiredRunwayFt: requiredRunway,
		},
		Time: dto.BlockTime{
			AirTimeHr:    utils.Round2(airTimeHr),
			TaxiHr:       utils.Round2(taxiHr),
			BlockHr:      utils.Round2(blockHr),
			RepositionHr: utils.Round2(repositionHr),
		},
		Costs: dto.Costs{
			DOCTotal:    utils.Round2(docTotal),
			AirportFees: utils.Round2(airportFees),
			CostBasis:   utils.Round2(costBasis),
		},
		SellPriceUSD: SellPrice(costBasis, req.MarginPct),
	}, nil
}

// SellPrice applies the margin to the unrounded cost basis and rounds to cents.
func SellPrice(costBasis, marginPct float64) float64 {
	return utils.Round2(costBasis * (1 + marginPct/100))
}
