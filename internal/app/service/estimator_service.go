package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/estimator"
)

type ModelTrainer interface {
	Train(ctx context.Context, n int) (estimator.Model, error)
}

type EstimatorService struct {
	Trainer ModelTrainer
	Samples int
}

func NewEstimatorService(trainer ModelTrainer, samples int) *EstimatorService {
	return &EstimatorService{
		Trainer: trainer,
		Samples: samples,
	}
}

// Train godoc
// @Summary      Retrain the price regression
// @Tags         ML
// @Success      200      {object}  dto.TrainResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/ml/train [post]
func (s *EstimatorService) Train(ctx context.Context) (dto.TrainResponse, error) {
	startTime := time.Now()

	slog.InfoContext(ctx, "training price model", slog.Int("samples", s.Samples))

	model, err := s.Trainer.Train(ctx, s.Samples)
	if err != nil {
		return dto.TrainResponse{}, fmt.Errorf("train price model: %w", err)
	}

	slog.InfoContext(ctx, "price model trained",
		slog.Int("requested", s.Samples),
		slog.Int("feasible", model.Samples),
		slog.Int64("train_ms", time.Since(startTime).Milliseconds()))

	return dto.TrainResponse{
		Samples:   model.Samples,
		Coef:      model.Coef,
		Intercept: model.Intercept,
	}, nil
}
