// Package constants provides shared constants for the fx-returns application.
package constants

// Rate tensor shape defaults matching the reference data set.
const (
	// DefaultPeriods is the expected number of periods (months) in a rates file
	DefaultPeriods = 12

	// DefaultCurrencies is the expected number of tradeable currencies
	DefaultCurrencies = 4
)

// Numeric constants
const (
	// DecimalPrecision is the precision for percentage rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultDataFolder is the default location of rates data files
	DefaultDataFolder = "./data/"
)
