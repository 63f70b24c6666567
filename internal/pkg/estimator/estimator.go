package estimator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
)

// Estimator predicts a sell price from the persisted regression. The first
// caller that finds no model trains one; the mutex makes every other caller
// wait for that model instead of training its own.
type Estimator struct {
	trainer          *Trainer
	store            ModelStore
	bootstrapSamples int

	mu    sync.Mutex
	model *Model
}

func New(trainer *Trainer, store ModelStore, bootstrapSamples int) *Estimator {
	return &Estimator{
		trainer:          trainer,
		store:            store,
		bootstrapSamples: bootstrapSamples,
	}
}

// EnsureModel loads the persisted model or trains and persists one.
func (e *Estimator) EnsureModel(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.ensureLocked(ctx)
	return err
}

// Train fits a fresh model on n samples, persists it and starts serving it.
func (e *Estimator) Train(ctx context.Context, n int) (Model, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	model, err := e.trainer.Train(n)
	if err != nil {
		return Model{}, err
	}

	if err := e.store.Save(ctx, model); err != nil {
		return Model{}, fmt.Errorf("failed to persist price model: %w", err)
	}

	e.model = &model

	return model, nil
}

func (e *Estimator) Predict(ctx context.Context, req dto.QuoteRequest) (float64, error) {
	e.mu.Lock()
	model, err := e.ensureLocked(ctx)
	e.mu.Unlock()

	if err != nil {
		return 0, err
	}

	return model.Predict(e.trainer.Encoder().Encode(req))
}

func (e *Estimator) ensureLocked(ctx context.Context) (Model, error) {
	if e.model != nil {
		return *e.model, nil
	}

	model, err := e.store.Load(ctx)
	if err == nil {
		e.model = &model
		return model, nil
	}

	if !errors.Is(err, ErrModelNotFound) {
		return Model{}, fmt.Errorf("failed to load price model: %w", err)
	}

	slog.InfoContext(ctx, "no persisted price model, training bootstrap model",
		slog.Int("samples", e.bootstrapSamples))

	model, err = e.trainer.Train(e.bootstrapSamples)
	if err != nil {
		return Model{}, err
	}

	created, err := e.store.SaveIfAbsent(ctx, model)
	switch {
	case err != nil:
		slog.WarnContext(ctx, "failed to persist bootstrap price model", slog.String("error", err.Error()))
	case !created:
		// another instance won the race; serve the same model it persisted
		if persisted, loadErr := e.store.Load(ctx); loadErr == nil {
			model = persisted
		}
	}

	e.model = &model

	return model, nil
}
