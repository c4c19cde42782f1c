package validation

import "fmt"

// SearchInfo carries the search parameters needed for validation without
// depending on the config package.
type SearchInfo struct {
	StartCurrency  int
	StartPeriod    int
	TargetCurrency int
	Periods        int
	Currencies     int
}

// ValidateSearch checks the search configuration for suspicious but workable
// settings and returns warnings. Hard precondition violations (out-of-range
// indices) are rejected later by the optimizer, not here.
func ValidateSearch(info SearchInfo) []string {
	var warnings []string

	if info.StartPeriod > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Starting period %d skips the first %d period(s) of rate data",
			info.StartPeriod, info.StartPeriod))
	}

	if info.StartCurrency != info.TargetCurrency {
		warnings = append(warnings, fmt.Sprintf(
			"Starting currency %d differs from target currency %d - the reported return mixes units",
			info.StartCurrency, info.TargetCurrency))
	}

	if info.Periods < 1 {
		warnings = append(warnings, fmt.Sprintf(
			"Expected period count %d leaves no room to trade", info.Periods))
	}

	if info.Currencies < 2 {
		warnings = append(warnings, fmt.Sprintf(
			"Expected currency count %d leaves nothing to convert into", info.Currencies))
	}

	return warnings
}
