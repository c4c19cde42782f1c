// Package output provides utilities for formatting and displaying
// optimization results.
package output

import (
	"fmt"

	"github.com/iwvelando/fx-returns/internal/optimizer"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report pairs an optimization result with the starting value it was computed
// from and the percentage profit derived from it.
type Report struct {
	Result     optimizer.Result
	StartValue float64
	Profit     float64
}

// PrettyFormat outputs a human-readable conversion table followed by the
// final return line.
func PrettyFormat(report Report) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Period | Conversion | Rate     | Value\n")
	fmt.Printf("______ | __________ | ____     | _____\n")
	value := report.StartValue
	for _, step := range report.Result.Path {
		value *= step.Rate
		_, _ = p.Printf("%6d | %4d -> %-3d | %.6f | %.6f\n", step.Period, step.From, step.To, step.Rate, value)
	}
	_, _ = p.Printf("Maximum possible return over the year: %.2f%%\n", report.Profit)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(report Report) {
	fmt.Printf("\"period\",\"from\",\"to\",\"rate\",\"value\"\n")
	value := report.StartValue
	for _, step := range report.Result.Path {
		value *= step.Rate
		fmt.Printf("\"%d\",\"%d\",\"%d\",\"%.6f\",\"%.6f\"\n", step.Period, step.From, step.To, step.Rate, value)
	}
	fmt.Printf("\"return\",\"\",\"\",\"\",\"%.2f%%\"\n", report.Profit)
}
