package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
)

type QuoteService interface {
	Catalog(ctx context.Context) dto.CatalogResponse
	Price(ctx context.Context, req dto.PriceRequest) (dto.Quote, error)
	PriceWithEstimate(ctx context.Context, req dto.PriceRequest) (dto.QuoteWithEstimate, error)
	QuotePDF(ctx context.Context, req dto.PriceRequest) (dto.QuoteDocument, error)
}

type QuoteEndpoint struct {
	Catalog           endpoint.Endpoint
	Price             endpoint.Endpoint
	PriceWithEstimate endpoint.Endpoint
	QuotePDF          endpoint.Endpoint
}

func MakeQuoteEndpoint(service QuoteService) QuoteEndpoint {
	return QuoteEndpoint{
		Catalog:           makeCatalogEndpoint(service),
		Price:             makePriceEndpoint(service),
		PriceWithEstimate: makePriceWithEstimateEndpoint(service),
		QuotePDF:          makeQuotePDFEndpoint(service),
	}
}

func makeCatalogEndpoint(service QuoteService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.Catalog(ctx), nil
	}
}

func makePriceEndpoint(service QuoteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, err := priceRequest(req)
		if err != nil {
			return nil, err
		}

		quote, err := service.Price(ctx, request)
		if err != nil {
			return nil, fmt.Errorf("quote service: %w", err)
		}

		return quote, nil
	}
}

func makePriceWithEstimateEndpoint(service QuoteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, err := priceRequest(req)
		if err != nil {
			return nil, err
		}

		quote, err := service.PriceWithEstimate(ctx, request)
		if err != nil {
			return nil, fmt.Errorf("quote service: %w", err)
		}

		return quote, nil
	}
}

func makeQuotePDFEndpoint(service QuoteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, err := priceRequest(req)
		if err != nil {
			return nil, err
		}

		doc, err := service.QuotePDF(ctx, request)
		if err != nil {
			return nil, fmt.Errorf("quote service: %w", err)
		}

		return doc, nil
	}
}

func priceRequest(req interface{}) (dto.PriceRequest, error) {
	request, ok := req.(*dto.PriceRequest)
	if !ok || request == nil {
		return dto.PriceRequest{}, errors.New("invalid type")
	}

	return *request, nil
}
