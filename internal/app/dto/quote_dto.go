package dto

import (
	"net/http"
	"strings"

	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
)

// defaults substituted for omitted price request fields
const (
	DefaultAvgWindKts   = 0
	DefaultMarginPct    = 20
	DefaultTaxiMin      = 20
	DefaultRepositionNM = 0
	DefaultOATC         = 15
)

// PriceRequest is the body of /price, /price-ml and /quote.pdf. Optional
// numeric fields are pointers so an omitted field can take its default.
type PriceRequest struct {
	DepartICAO   string   `json:"depart_icao" validate:"required"`
	ArriveICAO   string   `json:"arrive_icao" validate:"required"`
	JetModel     string   `json:"jet_model" validate:"required"`
	AvgWindKts   *float64 `json:"avg_wind_kts,omitempty"`
	MarginPct    *float64 `json:"margin_pct,omitempty" validate:"omitnil,gte=0"`
	TaxiMin      *float64 `json:"taxi_min,omitempty" validate:"omitnil,gte=0"`
	RepositionNM *float64 `json:"reposition_nm,omitempty" validate:"omitnil,gte=0"`
	OATCDepart   *float64 `json:"oat_c_depart,omitempty"`
	OATCArrive   *float64 `json:"oat_c_arrive,omitempty"`
}

func (p *PriceRequest) Bind(r *http.Request) error {
	p.DepartICAO = strings.ToUpper(strings.TrimSpace(p.DepartICAO))
	p.ArriveICAO = strings.ToUpper(strings.TrimSpace(p.ArriveICAO))
	p.JetModel = strings.TrimSpace(p.JetModel)

	return p.Validate()
}

func (p *PriceRequest) Validate() error {
	if err := ValidateSingleError(p); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}

// QuoteRequest substitutes defaults and coerces wind and taxi to whole numbers.
func (p PriceRequest) QuoteRequest() QuoteRequest {
	return QuoteRequest{
		Depart:       p.DepartICAO,
		Arrive:       p.ArriveICAO,
		Model:        p.JetModel,
		AvgWindKts:   int(valueOr(p.AvgWindKts, DefaultAvgWindKts)),
		MarginPct:    valueOr(p.MarginPct, DefaultMarginPct),
		TaxiMin:      int(valueOr(p.TaxiMin, DefaultTaxiMin)),
		RepositionNM: valueOr(p.RepositionNM, DefaultRepositionNM),
		OATCDepart:   valueOr(p.OATCDepart, DefaultOATC),
		OATCArrive:   valueOr(p.OATCArrive, DefaultOATC),
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}

	return *v
}

// QuoteRequest is the fully resolved input of the pricing engine.
type QuoteRequest struct {
	Depart       string
	Arrive       string
	Model        string
	AvgWindKts   int
	MarginPct    float64
	TaxiMin      int
	RepositionNM float64
	OATCDepart   float64
	OATCArrive   float64
}

type Quote struct {
	Route        Route       `json:"route"`
	Aircraft     Aircraft    `json:"aircraft"`
	Assumptions  Assumptions `json:"assumptions"`
	Time         BlockTime   `json:"time"`
	Costs        Costs       `json:"costs"`
	SellPriceUSD float64     `json:"sell_price_usd"`
}

type Route struct {
	Depart     string `json:"depart"`
	Arrive     string `json:"arrive"`
	DistanceNM int    `json:"distance_nm"`
}

type Aircraft struct {
	Category string  `json:"category"`
	Model    string  `json:"model"`
	SpeedKts float64 `json:"speed_kts"`
}

type Assumptions struct {
	AvgWindKts        int             `json:"avg_wind_kts"`
	TaxiMin           int             `json:"taxi_min"`
	RepositionNM      float64         `json:"reposition_nm"`
	MarginPct         float64         `json:"margin_pct"`
	OATCDepart        float64         `json:"oat_c_depart"`
	OATCArrive        float64         `json:"oat_c_arrive"`
	DensityAltitudeFt DensityAltitude `json:"density_altitude_ft"`
	RequiredRunwayFt  int             `json:"required_runway_ft"`
}

type DensityAltitude struct {
	Depart int `json:"depart"`
	Arrive int `json:"arrive"`
}

type BlockTime struct {
	AirTimeHr    float64 `json:"air_time_hr"`
	TaxiHr       float64 `json:"taxi_hr"`
	BlockHr      float64 `json:"block_hr"`
	RepositionHr float64 `json:"reposition_hr"`
}

type Costs struct {
	DOCTotal    float64 `json:"doc_total"`
	AirportFees float64 `json:"airport_fees"`
	CostBasis   float64 `json:"cost_basis"`
}

// QuoteWithEstimate is the /price-ml response: the quote plus the regression
// estimate and its distance from the computed sell price.
type QuoteWithEstimate struct {
	Quote
	MLPredictionUSD float64 `json:"ml_prediction_usd"`
	MLDeltaUSD      float64 `json:"ml_delta_usd"`
}

// QuoteDocument is a rendered quote ready to be streamed.
type QuoteDocument struct {
	Filename string
	Content  []byte
}

type CatalogResponse struct {
	Airports []CatalogAirport `json:"airports"`
	Jets     []CatalogJet     `json:"jets"`
}

type CatalogAirport struct {
	ICAO   string  `json:"icao"`
	Fees   float64 `json:"fees"`
	Runway int     `json:"rwy"`
}

type CatalogJet struct {
	Category string `json:"category"`
	Model    string `json:"model"`
}

type TrainResponse struct {
	Samples   int       `json:"samples"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}
