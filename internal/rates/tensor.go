// Package rates defines the exchange rate tensor and includes functions for
// loading and validating it from JSON data files.
package rates

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidShape indicates a rates table whose dimensions are ragged or
	// do not match the expected period/currency counts.
	ErrInvalidShape = errors.New("invalid rates shape")

	// ErrInvalidRate indicates a rate entry that is negative or not finite.
	ErrInvalidRate = errors.New("invalid rate value")
)

// Tensor is an immutable table of exchange rates indexed by
// (period, source currency, destination currency). Entries are finite and
// non-negative; a zero entry is a worthless conversion, not a rejected one.
type Tensor struct {
	periods    int
	currencies int
	data       []float64
}

// New validates the nested rate values and builds a Tensor from them. Every
// period must hold a square currencies x currencies matrix and every entry
// must be a finite non-negative number.
func New(values [][][]float64) (*Tensor, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no periods", ErrInvalidShape)
	}
	currencies := len(values[0])
	if currencies == 0 {
		return nil, fmt.Errorf("%w: period 0 has no currencies", ErrInvalidShape)
	}

	data := make([]float64, 0, len(values)*currencies*currencies)
	for p, matrix := range values {
		if len(matrix) != currencies {
			return nil, fmt.Errorf("%w: period %d has %d source rows, want %d",
				ErrInvalidShape, p, len(matrix), currencies)
		}
		for i, row := range matrix {
			if len(row) != currencies {
				return nil, fmt.Errorf("%w: period %d currency %d has %d rates, want %d",
					ErrInvalidShape, p, i, len(row), currencies)
			}
			for j, rate := range row {
				if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
					return nil, fmt.Errorf("%w: rate[%d][%d][%d] = %v",
						ErrInvalidRate, p, i, j, rate)
				}
				data = append(data, rate)
			}
		}
	}

	return &Tensor{
		periods:    len(values),
		currencies: currencies,
		data:       data,
	}, nil
}

// Periods returns the number of periods covered by the tensor.
func (t *Tensor) Periods() int {
	return t.periods
}

// Currencies returns the number of tradeable currencies.
func (t *Tensor) Currencies() int {
	return t.currencies
}

// At returns the multiplier applied to a unit of currency from held at the
// start of period when converted into currency to during that period.
func (t *Tensor) At(period, from, to int) float64 {
	return t.data[(period*t.currencies+from)*t.currencies+to]
}

// CheckShape verifies the tensor matches the expected dimensions. Shape
// mismatches are rejected here, at the boundary, so the optimizer can assume
// well-formed input.
func CheckShape(t *Tensor, periods, currencies int) error {
	if t == nil {
		return fmt.Errorf("%w: nil tensor", ErrInvalidShape)
	}
	if t.periods != periods || t.currencies != currencies {
		return fmt.Errorf("%w: got %dx%dx%d, want %dx%dx%d",
			ErrInvalidShape, t.periods, t.currencies, t.currencies,
			periods, currencies, currencies)
	}
	return nil
}
