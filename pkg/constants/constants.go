// Package constants provides shared constants for the tour-estimate application.
package constants

// DateLayout is the format expected for estimate dates (tour dates, day
// dates) and is also the output date format.
const DateLayout = "2006-01-02"

// LabelLayout is the timestamp format used when synthesizing an estimate
// label, e.g. "Estimate 05.03.2024, 14:30".
const LabelLayout = "02.01.2006, 15:04"

// LabelPrefix is prepended to the synthesized estimate label.
const LabelPrefix = "Estimate"

// Estimate defaults
const (
	// DefaultCurrency is assigned when an estimate carries no currency code
	DefaultCurrency = "USD"

	// DefaultStatus is assigned when an estimate carries no status
	DefaultStatus = StatusDraft

	// DefaultNights is the billed nights for a hotel with no stated duration
	DefaultNights = 1
)

// Estimate statuses. The set is open; unknown statuses pass through.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusApproved  = "approved"
	StatusConfirmed = "confirmed"
	StatusFinal     = "final"
)

// Accommodation types
const (
	AccommodationSingle = "single"
	AccommodationDouble = "double"
	AccommodationTriple = "triple"

	// DoubleOccupancy is the number of travelers sharing a double room
	DoubleOccupancy = 2

	// TripleOccupancy is the number of travelers sharing a triple room
	TripleOccupancy = 3
)

// Tour date types
const (
	DateTypeExact    = "exact"
	DateTypeFlexible = "flexible"
)

// Financial constants
const (
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

// Configuration file constants
const (
	// DefaultEstimateFile is the default estimate document file name
	DefaultEstimateFile = "estimate.yaml"
)
