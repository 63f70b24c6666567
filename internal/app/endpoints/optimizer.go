package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
)

type OptimizerService interface {
	Run(ctx context.Context, req dto.OptimizerRequest) (dto.OptimizerResponse, error)
}

type OptimizerEndpoint struct {
	Run endpoint.Endpoint
}

func MakeOptimizerEndpoint(service OptimizerService) OptimizerEndpoint {
	return OptimizerEndpoint{
		Run: makeRunEndpoint(service),
	}
}

func makeRunEndpoint(service OptimizerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.OptimizerRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		solution, err := service.Run(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("optimizer service: %w", err)
		}

		return solution, nil
	}
}
