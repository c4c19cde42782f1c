// Package optimizer computes the maximum multiplicative return achievable by
// converting holdings between currencies period by period across a fixed
// trading horizon, ending in a designated target currency.
package optimizer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/iwvelando/fx-returns/internal/rates"
	"github.com/iwvelando/fx-returns/pkg/constants"
	"github.com/iwvelando/fx-returns/pkg/mathutil"
)

var (
	// ErrInvalidShape indicates the search was given a missing or degenerate
	// rate tensor.
	ErrInvalidShape = errors.New("invalid tensor shape")

	// ErrInvalidRange indicates a starting period, currency, target, or value
	// outside the bounds the tensor supports.
	ErrInvalidRange = errors.New("search parameter out of range")
)

// Search describes one optimization run over an immutable rate tensor. The
// tensor is read-only for the duration of the run; the search itself carries
// no state between runs.
type Search struct {
	Tensor         *rates.Tensor
	StartPeriod    int
	StartCurrency  int
	TargetCurrency int
	Value          float64
}

// Step records one conversion along the optimal path.
type Step struct {
	Period int
	From   int
	To     int
	Rate   float64
}

// Result is the outcome of an optimization run: the best final multiplier and
// the conversion path that achieves it.
type Result struct {
	Multiplier float64
	Path       []Step
}

func (s Search) validate() error {
	if s.Tensor == nil {
		return fmt.Errorf("%w: nil tensor", ErrInvalidShape)
	}
	periods := s.Tensor.Periods()
	currencies := s.Tensor.Currencies()
	if periods < 1 || currencies < 1 {
		return fmt.Errorf("%w: %dx%dx%d tensor", ErrInvalidShape, periods, currencies, currencies)
	}
	if s.StartPeriod < 0 || s.StartPeriod >= periods {
		return fmt.Errorf("%w: start period %d with %d periods", ErrInvalidRange, s.StartPeriod, periods)
	}
	if s.StartCurrency < 0 || s.StartCurrency >= currencies {
		return fmt.Errorf("%w: start currency %d with %d currencies", ErrInvalidRange, s.StartCurrency, currencies)
	}
	if s.TargetCurrency < 0 || s.TargetCurrency >= currencies {
		return fmt.Errorf("%w: target currency %d with %d currencies", ErrInvalidRange, s.TargetCurrency, currencies)
	}
	if s.Value < 0 {
		return fmt.Errorf("%w: negative starting value %v", ErrInvalidRange, s.Value)
	}
	return nil
}

// Run computes the maximum return bottom-up. Because every rate is
// non-negative, the starting value is a pure multiplicative scale factor and
// the optimal destination at each step depends only on (period, currency), so
// a periods x currencies table of best continuation multipliers is filled
// from the final period backwards in O(periods * currencies^2).
//
// At the final period the destination is not a free choice: holdings must be
// converted into the target currency. Every earlier period picks the
// destination that maximizes the continuation.
func (s Search) Run() (Result, error) {
	if err := s.validate(); err != nil {
		return Result{}, err
	}

	periods := s.Tensor.Periods()
	currencies := s.Tensor.Currencies()
	last := periods - 1

	// best[p*currencies+c] is the best multiplier obtainable from period p
	// holding currency c; choice holds the destination that achieves it.
	best := make([]float64, periods*currencies)
	choice := make([]int, periods*currencies)

	for c := 0; c < currencies; c++ {
		best[last*currencies+c] = s.Tensor.At(last, c, s.TargetCurrency)
		choice[last*currencies+c] = s.TargetCurrency
	}

	for p := last - 1; p >= s.StartPeriod; p-- {
		for c := 0; c < currencies; c++ {
			bestVal := s.Tensor.At(p, c, 0) * best[(p+1)*currencies]
			bestDest := 0
			for d := 1; d < currencies; d++ {
				val := s.Tensor.At(p, c, d) * best[(p+1)*currencies+d]
				if val > bestVal {
					bestVal = val
					bestDest = d
				}
			}
			best[p*currencies+c] = bestVal
			choice[p*currencies+c] = bestDest
		}
	}

	// Walk the recorded choices forward to reconstruct the optimal path.
	path := make([]Step, 0, periods-s.StartPeriod)
	currency := s.StartCurrency
	for p := s.StartPeriod; p < periods; p++ {
		dest := choice[p*currencies+currency]
		path = append(path, Step{
			Period: p,
			From:   currency,
			To:     dest,
			Rate:   s.Tensor.At(p, currency, dest),
		})
		currency = dest
	}

	return Result{
		Multiplier: s.Value * best[s.StartPeriod*currencies+s.StartCurrency],
		Path:       path,
	}, nil
}

// RunRecursive explores every conversion sequence depth-first and is retained
// as the reference implementation for cross-checking Run. The first period's
// destination choices fan out across goroutines with a max-reduction; each
// branch reads the shared immutable tensor and owns its local accumulator, so
// no locking is needed.
func (s Search) RunRecursive() (float64, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	if s.StartPeriod == s.Tensor.Periods()-1 {
		return s.Value * s.Tensor.At(s.StartPeriod, s.StartCurrency, s.TargetCurrency), nil
	}

	currencies := s.Tensor.Currencies()
	branches := make([]float64, currencies)
	var wg sync.WaitGroup
	for d := 0; d < currencies; d++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			value := s.Value * s.Tensor.At(s.StartPeriod, s.StartCurrency, d)
			branches[d] = s.descend(s.StartPeriod+1, d, value)
		}(d)
	}
	wg.Wait()

	bestVal := branches[0]
	for _, branch := range branches[1:] {
		bestVal = mathutil.Max(bestVal, branch)
	}
	return bestVal, nil
}

func (s Search) descend(period, currency int, value float64) float64 {
	if period == s.Tensor.Periods()-1 {
		return value * s.Tensor.At(period, currency, s.TargetCurrency)
	}
	bestVal := 0.0
	for d := 0; d < s.Tensor.Currencies(); d++ {
		next := s.descend(period+1, d, value*s.Tensor.At(period, currency, d))
		bestVal = mathutil.Max(bestVal, next)
	}
	return bestVal
}

// Profit converts a final multiplier into the percentage return reported to
// the user, rounded to two decimal places.
func Profit(multiplier float64) float64 {
	return mathutil.Round((multiplier - 1.0) * constants.PercentageMultiplier)
}
