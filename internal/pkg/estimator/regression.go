package estimator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Model is a fitted linear regression over the encoded features.
type Model struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Samples   int       `json:"samples"`
	TrainedAt time.Time `json:"trained_at"`
}

func (m Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coef) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(m.Coef), len(features))
	}

	prediction := m.Intercept
	for i, v := range features {
		prediction += m.Coef[i] * v
	}

	return prediction, nil
}

// Fit solves the ordinary least squares problem with an intercept column.
func Fit(features [][]float64, targets []float64) (Model, error) {
	if len(features) == 0 || len(features) != len(targets) {
		return Model{}, fmt.Errorf("need matching non-empty features and targets, got %d and %d",
			len(features), len(targets))
	}

	rows, cols := len(features), len(features[0])+1
	if rows < cols {
		return Model{}, fmt.Errorf("need at least %d samples to fit %d coefficients, got %d", cols, cols, rows)
	}

	design := mat.NewDense(rows, cols, nil)
	for i, row := range features {
		if len(row) != cols-1 {
			return Model{}, fmt.Errorf("sample %d has %d features, want %d", i, len(row), cols-1)
		}

		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}

	var beta mat.VecDense
	if err := beta.SolveVec(design, mat.NewVecDense(rows, targets)); err != nil {
		// a Condition error still carries a solution; anything else does not
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Model{}, fmt.Errorf("failed to solve least squares: %w", err)
		}
	}

	coef := make([]float64, cols-1)
	for j := range coef {
		coef[j] = beta.AtVec(j + 1)
	}

	model := Model{
		Coef:      coef,
		Intercept: beta.AtVec(0),
		Samples:   rows,
	}

	for _, v := range append([]float64{model.Intercept}, coef...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Model{}, errors.New("regression produced non-finite coefficients")
		}
	}

	return model, nil
}
