//go:build unit

package endpoints

import (
	"context"
	"errors"
	"testing"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuoteService struct {
	err error
}

func (s stubQuoteService) Catalog(context.Context) dto.CatalogResponse {
	return dto.CatalogResponse{Jets: []dto.CatalogJet{{Category: "Heavy", Model: "G450"}}}
}

func (s stubQuoteService) Price(_ context.Context, req dto.PriceRequest) (dto.Quote, error) {
	return dto.Quote{Route: dto.Route{Depart: req.DepartICAO, Arrive: req.ArriveICAO}}, s.err
}

func (s stubQuoteService) PriceWithEstimate(_ context.Context, req dto.PriceRequest) (dto.QuoteWithEstimate, error) {
	return dto.QuoteWithEstimate{MLPredictionUSD: 1}, s.err
}

func (s stubQuoteService) QuotePDF(_ context.Context, req dto.PriceRequest) (dto.QuoteDocument, error) {
	return dto.QuoteDocument{Filename: "quote.pdf"}, s.err
}

func TestQuoteEndpoint(t *testing.T) {
	ep := MakeQuoteEndpoint(stubQuoteService{})
	req := &dto.PriceRequest{DepartICAO: "KTEB", ArriveICAO: "KMIA", JetModel: "G450"}

	t.Run("price", func(t *testing.T) {
		got, err := ep.Price(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, dto.Quote{Route: dto.Route{Depart: "KTEB", Arrive: "KMIA"}}, got)
	})

	t.Run("catalog_ignores_request", func(t *testing.T) {
		got, err := ep.Catalog(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, got.(dto.CatalogResponse).Jets, 1)
	})

	t.Run("invalid_type", func(t *testing.T) {
		for _, e := range []func(context.Context, interface{}) (interface{}, error){ep.Price, ep.PriceWithEstimate, ep.QuotePDF} {
			_, err := e(context.Background(), dto.PriceRequest{})
			assert.EqualError(t, err, "invalid type")
		}
	})

	t.Run("service_error_wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := MakeQuoteEndpoint(stubQuoteService{err: boom}).QuotePDF(context.Background(), req)
		assert.ErrorIs(t, err, boom)
	})
}
