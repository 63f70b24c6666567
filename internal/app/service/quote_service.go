package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/catalog"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/quotepdf"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/utils"
)

type Pricer interface {
	Price(req dto.QuoteRequest) (dto.Quote, error)
}

type PricePredictor interface {
	Predict(ctx context.Context, req dto.QuoteRequest) (float64, error)
}

type QuoteRenderer interface {
	Render(quote dto.Quote) ([]byte, error)
}

type QuoteService struct {
	Catalogs  catalog.Catalog
	Pricer    Pricer
	Predictor PricePredictor
	Renderer  QuoteRenderer
}

func NewQuoteService(
	catalogs catalog.Catalog,
	pricer Pricer,
	predictor PricePredictor,
	renderer QuoteRenderer,
) *QuoteService {
	return &QuoteService{
		Catalogs:  catalogs,
		Pricer:    pricer,
		Predictor: predictor,
		Renderer:  renderer,
	}
}

// Catalog lists airports and aircraft in catalog order.
// Catalog godoc
// @Summary      List airports and jets
// @Tags         Quotes
// @Success      200      {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (s *QuoteService) Catalog(_ context.Context) dto.CatalogResponse {
	airports := s.Catalogs.Airports.All()
	jets := s.Catalogs.Fleet.All()

	resp := dto.CatalogResponse{
		Airports: make([]dto.CatalogAirport, 0, len(airports)),
		Jets:     make([]dto.CatalogJet, 0, len(jets)),
	}

	for _, airport := range airports {
		resp.Airports = append(resp.Airports, dto.CatalogAirport{
			ICAO:   airport.ICAO,
			Fees:   airport.FeesUSD,
			Runway: airport.RunwayFt,
		})
	}

	for _, jet := range jets {
		resp.Jets = append(resp.Jets, dto.CatalogJet{
			Category: jet.Category,
			Model:    jet.Model,
		})
	}

	return resp
}

// Price godoc
// @Summary      Price a charter leg
// @Tags         Quotes
// @Param        request  body      dto.PriceRequest  true  "Quote inputs"
// @Success      200      {object}  dto.Quote
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/price [post]
func (s *QuoteService) Price(ctx context.Context, req dto.PriceRequest) (dto.Quote, error) {
	quote, err := s.Pricer.Price(req.QuoteRequest())
	if err != nil {
		slog.DebugContext(ctx, "quote rejected", slog.String("error", err.Error()))
		return dto.Quote{}, fmt.Errorf("price quote: %w", err)
	}

	return quote, nil
}

// PriceWithEstimate prices the quote and puts the regression estimate next to it.
// PriceWithEstimate godoc
// @Summary      Price a charter leg with a regression estimate
// @Tags         Quotes
// @Param        request  body      dto.PriceRequest  true  "Quote inputs"
// @Success      200      {object}  dto.QuoteWithEstimate
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/price-ml [post]
func (s *QuoteService) PriceWithEstimate(ctx context.Context, req dto.PriceRequest) (dto.QuoteWithEstimate, error) {
	quoteReq := req.QuoteRequest()

	quote, err := s.Pricer.Price(quoteReq)
	if err != nil {
		return dto.QuoteWithEstimate{}, fmt.Errorf("price quote: %w", err)
	}

	prediction, err := s.Predictor.Predict(ctx, quoteReq)
	if err != nil {
		return dto.QuoteWithEstimate{}, fmt.Errorf("predict price: %w", err)
	}

	return dto.QuoteWithEstimate{
		Quote:           quote,
		MLPredictionUSD: utils.Round2(prediction),
		MLDeltaUSD:      utils.Round2(quote.SellPriceUSD - prediction),
	}, nil
}

// QuotePDF godoc
// @Summary      Render a quote as PDF
// @Tags         Quotes
// @Produce      application/pdf
// @Param        request  body      dto.PriceRequest  true  "Quote inputs"
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/quote.pdf [post]
func (s *QuoteService) QuotePDF(ctx context.Context, req dto.PriceRequest) (dto.QuoteDocument, error) {
	quote, err := s.Price(ctx, req)
	if err != nil {
		return dto.QuoteDocument{}, err
	}

	content, err := s.Renderer.Render(quote)
	if err != nil {
		return dto.QuoteDocument{}, fmt.Errorf("render quote: %w", err)
	}

	return dto.QuoteDocument{
		Filename: quotepdf.Filename(quote),
		Content:  content,
	}, nil
}
