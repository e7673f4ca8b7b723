// Package constants provides shared constants for annuity-core.
package constants

// DateTimeLayout is the format used for schedule row date labels.
const DateTimeLayout = "2006-01"

// Payment timing codes. These match the spreadsheet convention for the
// optional "type" argument of PMT/PPMT/IPMT.
const (
	// TimingOrdinary indicates payments made at the end of each period.
	TimingOrdinary = 0

	// TimingDue indicates payments made at the start of each period.
	TimingDue = 1
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

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

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
