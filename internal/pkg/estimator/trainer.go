package estimator

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/fleet"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/geo"
)

var ErrNoTrainingSamples = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "no training samples generated",
}

var marginChoices = []float64{10, 15, 20, 25, 30, 35}

const (
	syntheticTaxiMin = 20
	maxWindKts       = 40
	minOATC          = -5.0
	maxOATC          = 35.0
)

type Pricer interface {
	Price(req dto.QuoteRequest) (dto.Quote, error)
}

// Trainer fits the regression on quotes for randomly sampled requests. It is
// not safe for concurrent use; Estimator serializes access.
type Trainer struct {
	pricer   Pricer
	encoder  FeatureEncoder
	airports []string
	models   []string
	rng      *rand.Rand
	now      func() time.Time
}

func NewTrainer(pricer Pricer, airports *geo.Registry, jets *fleet.Catalog, seed uint64) *Trainer {
	models := make([]string, 0)
	for _, jet := range jets.All() {
		models = append(models, jet.Model)
	}

	return &Trainer{
		pricer:   pricer,
		encoder:  NewFeatureEncoder(airports, jets),
		airports: airports.Codes(),
		models:   models,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:      time.Now,
	}
}

func (t *Trainer) Encoder() FeatureEncoder {
	return t.encoder
}

// SampleRequest draws a request over a distinct airport pair.
func (t *Trainer) SampleRequest() dto.QuoteRequest {
	i := t.rng.IntN(len(t.airports))
	j := t.rng.IntN(len(t.airports) - 1)
	if j >= i {
		j++
	}

	return dto.QuoteRequest{
		Depart:     t.airports[i],
		Arrive:     t.airports[j],
		Model:      t.models[t.rng.IntN(len(t.models))],
		AvgWindKts: t.rng.IntN(2*maxWindKts+1) - maxWindKts,
		MarginPct:  marginChoices[t.rng.IntN(len(marginChoices))],
		TaxiMin:    syntheticTaxiMin,
		OATCDepart: minOATC + (maxOATC-minOATC)*t.rng.Float64(),
		OATCArrive: minOATC + (maxOATC-minOATC)*t.rng.Float64(),
	}
}

// Generate prices n sampled requests and keeps the feasible ones.
func (t *Trainer) Generate(n int) ([][]float64, []float64) {
	features := make([][]float64, 0, n)
	targets := make([]float64, 0, n)

	if len(t.airports) < 2 || len(t.models) == 0 {
		return features, targets
	}

	for i := 0; i < n; i++ {
		req := t.SampleRequest()

		quote, err := t.pricer.Price(req)
		if err != nil {
			continue
		}

		features = append(features, t.encoder.Encode(req))
		targets = append(targets, quote.SellPriceUSD)
	}

	return features, targets
}

func (t *Trainer) Train(n int) (Model, error) {
	features, targets := t.Generate(n)
	if len(features) == 0 {
		return Model{}, ErrNoTrainingSamples
	}

	model, err := Fit(features, targets)
	if err != nil {
		return Model{}, err
	}

	model.TrainedAt = t.now().UTC()

	return model, nil
}
