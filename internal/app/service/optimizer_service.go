package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/optimizer"
	"golang.org/x/sync/semaphore"
)

type Assigner interface {
	Assign(aircraft []dto.OptimizerAircraft, legs []dto.OptimizerLeg) (dto.OptimizerResponse, error)
}

type assignResult struct {
	Response dto.OptimizerResponse
	Error    error
}

// OptimizerService runs solves on their own goroutine, at most
// maxConcurrentSolves at a time.
type OptimizerService struct {
	Assigner Assigner
	solves   *semaphore.Weighted
}

func NewOptimizerService(assigner Assigner, maxConcurrentSolves int) *OptimizerService {
	if maxConcurrentSolves < 1 {
		maxConcurrentSolves = 1
	}

	return &OptimizerService{
		Assigner: assigner,
		solves:   semaphore.NewWeighted(int64(maxConcurrentSolves)),
	}
}

// Run godoc
// @Summary      Assign legs to aircraft
// @Tags         Optimizer
// @Description  Cover every leg with exactly one aircraft minimising total repositioning distance
// @Param        request  body      dto.OptimizerRequest  true  "Fleet and legs"
// @Success      200      {object}  dto.OptimizerResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/optimizer/run [post]
func (s *OptimizerService) Run(ctx context.Context, req dto.OptimizerRequest) (dto.OptimizerResponse, error) {
	if err := s.solves.Acquire(ctx, 1); err != nil {
		return dto.OptimizerResponse{}, fmt.Errorf("%w: %w", ErrSolverBusy, err)
	}

	startTime := time.Now()
	results := make(chan assignResult, 1)

	// the slot is held until the solve returns, even if the caller gave up
	go func() {
		defer s.solves.Release(1)

		resp, err := s.Assigner.Assign(req.Aircraft, req.Legs)
		results <- assignResult{Response: resp, Error: err}
	}()

	select {
	case <-ctx.Done():
		return dto.OptimizerResponse{}, fmt.Errorf("optimizer run: %w", ctx.Err())
	case result := <-results:
		if result.Error != nil {
			if errors.Is(result.Error, optimizer.ErrInfeasible) {
				slog.WarnContext(ctx, "no feasible assignment",
					slog.Int("aircraft", len(req.Aircraft)),
					slog.Int("legs", len(req.Legs)))
			}

			return dto.OptimizerResponse{}, fmt.Errorf("optimizer run: %w", result.Error)
		}

		slog.InfoContext(ctx, "assignment solved",
			slog.Int("aircraft", len(req.Aircraft)),
			slog.Int("legs", len(req.Legs)),
			slog.Float64("objective_nm", result.Response.ObjectiveNM),
			slog.Int64("solve_ms", time.Since(startTime).Milliseconds()))

		return result.Response, nil
	}
}
