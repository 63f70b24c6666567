package estimator

import (
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/fleet"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/geo"
)

// FeatureNames lists the regression inputs in encoding order.
var FeatureNames = []string{
	"distance_nm",
	"avg_wind_kts",
	"oat_c_depart",
	"oat_c_arrive",
	"margin_pct",
	"doc_hr_usd",
}

// FeatureEncoder turns a quote request into the regression feature vector.
// The aircraft model enters through its hourly operating cost; unknown
// airports or models encode as 0.
type FeatureEncoder struct {
	airports *geo.Registry
	fleet    *fleet.Catalog
}

func NewFeatureEncoder(airports *geo.Registry, jets *fleet.Catalog) FeatureEncoder {
	return FeatureEncoder{
		airports: airports,
		fleet:    jets,
	}
}

func (f FeatureEncoder) Encode(req dto.QuoteRequest) []float64 {
	distance, _ := f.airports.Distance(req.Depart, req.Arrive)

	docPerHour := 0.0
	if jet, ok := f.fleet.Lookup(req.Model); ok {
		docPerHour = jet.DOCPerHour
	}

	return []float64{
		distance,
		float64(req.AvgWindKts),
		req.OATCDepart,
		req.OATCArrive,
		req.MarginPct,
		docPerHour,
	}
}
