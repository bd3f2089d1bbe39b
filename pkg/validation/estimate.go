// Package validation provides estimate document validation utilities.
// Validators accumulate human-readable error strings; an empty list means
// the document is valid. They never panic on malformed-but-typed input.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/tour-estimate/internal/estimate"
	"github.com/iwvelando/tour-estimate/pkg/datetime"
)

// Result reports the outcome of a partial-update validation.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateEstimate checks a full estimate document and returns the list of
// business-rule violations. Every field is checked; errors accumulate
// rather than short-circuiting.
func ValidateEstimate(est *estimate.Estimate) []string {
	var errors []string

	if est == nil {
		return append(errors, "Estimate data is required")
	}

	if est.Group == nil || est.Group.TotalPax == nil {
		errors = append(errors, "Group data with totalPax is required")
	} else if *est.Group.TotalPax <= 0 {
		errors = append(errors, "Total passengers must be greater than 0")
	}

	errors = append(errors, validateHotelList(est.Hotels)...)

	return errors
}

// validateHotelList applies the per-hotel rules shared between the full
// and partial-update validators. Messages carry 1-based hotel indexes.
func validateHotelList(hotels []estimate.Hotel) []string {
	var errors []string

	for i, hotel := range hotels {
		index := i + 1
		if strings.TrimSpace(hotel.Name) == "" {
			errors = append(errors, fmt.Sprintf("Hotel %d: name is required", index))
		}
		if hotel.PaxCount != nil && *hotel.PaxCount <= 0 {
			errors = append(errors, fmt.Sprintf("Hotel %d: pax count must be greater than 0", index))
		}
		if hotel.PricePerRoom < 0 {
			errors = append(errors, fmt.Sprintf("Hotel %d: price per room cannot be negative", index))
		}
	}

	return errors
}

// ValidateHotel checks a standalone hotel record.
func ValidateHotel(hotel *estimate.Hotel) []string {
	var errors []string

	if hotel == nil {
		return append(errors, "Hotel data is required")
	}

	if strings.TrimSpace(hotel.Name) == "" {
		errors = append(errors, "Hotel name is required")
	}
	if strings.TrimSpace(hotel.AccommodationType) == "" {
		errors = append(errors, "Accommodation type is required")
	}
	if hotel.PricePerRoom < 0 {
		errors = append(errors, "Price per room must be a non-negative number")
	}
	if hotel.Nights != nil && *hotel.Nights <= 0 {
		errors = append(errors, "Number of nights must be greater than 0")
	}

	return errors
}

// ValidateActivity checks a standalone activity record. Estimate-nested
// activities price through cost while catalog entries use base_price; a
// negative value in either is the same violation.
func ValidateActivity(activity *estimate.Activity) []string {
	var errors []string

	if activity == nil {
		return append(errors, "Activity data is required")
	}

	if strings.TrimSpace(activity.Name) == "" {
		errors = append(errors, "Activity name is required")
	}
	if activity.Cost < 0 || (activity.BasePrice != nil && *activity.BasePrice < 0) {
		errors = append(errors, "Activity base price must be a non-negative number")
	}

	return errors
}

// ValidateEstimateUpdate checks a partial estimate update. Only fields
// present in the update are checked; absent fields are neither defaulted
// nor flagged. An empty update is vacuously valid.
func ValidateEstimateUpdate(updates *estimate.Update) Result {
	// Initialized non-nil so a valid result serializes errors as an
	// empty list rather than null.
	errors := []string{}

	if updates == nil {
		return Result{IsValid: false, Errors: []string{"Update data is required"}}
	}

	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		errors = append(errors, "Estimate name cannot be empty")
	}
	if updates.Title != nil && strings.TrimSpace(*updates.Title) == "" {
		errors = append(errors, "Estimate title cannot be empty")
	}

	if updates.Group != nil && updates.Group.TotalPax != nil && *updates.Group.TotalPax <= 0 {
		errors = append(errors, "Total passengers must be greater than 0")
	}

	if updates.Hotels != nil {
		errors = append(errors, validateHotelList(updates.Hotels)...)
	}

	if updates.TourDates != nil && updates.TourDates.StartDate != "" && updates.TourDates.EndDate != "" {
		after, err := datetime.DateAfter(updates.TourDates.EndDate, updates.TourDates.StartDate)
		// Unparseable dates are not an ordering violation.
		if err == nil && !after {
			errors = append(errors, "End date must be after start date")
		}
	}

	if updates.Markup != nil && *updates.Markup < 0 {
		errors = append(errors, "Markup must be a non-negative number")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors}
}
