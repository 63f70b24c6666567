package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
)

type EstimatorService interface {
	Train(ctx context.Context) (dto.TrainResponse, error)
}

type EstimatorEndpoint struct {
	Train endpoint.Endpoint
}

func MakeEstimatorEndpoint(service EstimatorService) EstimatorEndpoint {
	return EstimatorEndpoint{
		Train: makeTrainEndpoint(service),
	}
}

func makeTrainEndpoint(service EstimatorService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		resp, err := service.Train(ctx)
		if err != nil {
			return nil, fmt.Errorf("estimator service: %w", err)
		}

		return resp, nil
	}
}
