package integration

import (
	"math"
	"testing"

	"github.com/iwvelando/fx-returns/internal/config"
	"github.com/iwvelando/fx-returns/internal/optimizer"
	"github.com/iwvelando/fx-returns/internal/rates"
	"github.com/iwvelando/fx-returns/pkg/constants"
)

const (
	fixtureFolder = "../../data"
	fixtureFile   = "currency_data.json"

	// Baseline multiplier for the shipped fixture starting at (period 0,
	// currency 0, value 1.0) with target currency 0.
	fixtureMultiplier = 2.730720654385832
	fixtureProfit     = 173.07
)

// TestFixtureBaseline runs the whole pipeline against the shipped rates file
// exactly as main() does and checks the baseline result.
func TestFixtureBaseline(t *testing.T) {
	conf, err := config.LoadConfiguration("nonexistent.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	tensor, err := rates.Load(fixtureFolder, fixtureFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := rates.CheckShape(tensor, conf.Search.Periods, conf.Search.Currencies); err != nil {
		t.Fatalf("CheckShape() error = %v", err)
	}
	if tensor.Periods() != constants.DefaultPeriods || tensor.Currencies() != constants.DefaultCurrencies {
		t.Fatalf("fixture shape = %dx%d, want %dx%d",
			tensor.Periods(), tensor.Currencies(), constants.DefaultPeriods, constants.DefaultCurrencies)
	}

	search := optimizer.Search{
		Tensor:         tensor,
		StartPeriod:    conf.Search.StartPeriod,
		StartCurrency:  conf.Search.StartCurrency,
		TargetCurrency: conf.Search.TargetCurrency,
		Value:          1.0,
	}

	result, err := search.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if math.Abs(result.Multiplier-fixtureMultiplier) > 1e-9 {
		t.Errorf("Run() = %v, want %v", result.Multiplier, fixtureMultiplier)
	}

	if profit := optimizer.Profit(result.Multiplier); profit != fixtureProfit {
		t.Errorf("Profit() = %v, want %v", profit, fixtureProfit)
	}

	// The exhaustive reference search must agree with the table computation.
	recursive, err := search.RunRecursive()
	if err != nil {
		t.Fatalf("RunRecursive() error = %v", err)
	}
	if math.Abs(result.Multiplier-recursive) > 1e-9 {
		t.Errorf("Run() = %v but RunRecursive() = %v", result.Multiplier, recursive)
	}

	// The reported path covers the full horizon and settles in the target.
	if len(result.Path) != tensor.Periods() {
		t.Errorf("path length = %d, want %d", len(result.Path), tensor.Periods())
	}
	if last := result.Path[len(result.Path)-1]; last.To != search.TargetCurrency {
		t.Errorf("path ends in currency %d, want target %d", last.To, search.TargetCurrency)
	}
}

// TestFixtureAlternativeStarts cross-checks both algorithms from every
// starting currency against the shipped fixture.
func TestFixtureAlternativeStarts(t *testing.T) {
	tensor, err := rates.Load(fixtureFolder, fixtureFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for currency := 0; currency < tensor.Currencies(); currency++ {
		search := optimizer.Search{
			Tensor:         tensor,
			StartCurrency:  currency,
			TargetCurrency: 0,
			Value:          1.0,
		}
		result, err := search.Run()
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		recursive, err := search.RunRecursive()
		if err != nil {
			t.Fatalf("RunRecursive() error = %v", err)
		}
		if math.Abs(result.Multiplier-recursive) > 1e-9 {
			t.Errorf("start currency %d: Run() = %v but RunRecursive() = %v",
				currency, result.Multiplier, recursive)
		}
		if result.Multiplier < 0 {
			t.Errorf("start currency %d: Run() = %v, want >= 0", currency, result.Multiplier)
		}
	}
}
