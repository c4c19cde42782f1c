// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/fx-returns/internal/rates"
)

// MustTensor builds a tensor from nested rate literals, failing the test on
// invalid input.
func MustTensor(t *testing.T, values [][][]float64) *rates.Tensor {
	t.Helper()
	tensor, err := rates.New(values)
	if err != nil {
		t.Fatalf("rates.New() error = %v", err)
	}
	return tensor
}

// UniformTensor builds a periods x currencies x currencies tensor with every
// rate set to the same value.
func UniformTensor(t *testing.T, periods, currencies int, rate float64) *rates.Tensor {
	t.Helper()
	values := make([][][]float64, periods)
	for p := range values {
		values[p] = make([][]float64, currencies)
		for i := range values[p] {
			row := make([]float64, currencies)
			for j := range row {
				row[j] = rate
			}
			values[p][i] = row
		}
	}
	return MustTensor(t, values)
}
