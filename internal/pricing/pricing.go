// Package pricing derives billable totals from an estimate document. All
// calculations are pure: missing optional fields coerce to their documented
// defaults and never yield NaN or a panic.
package pricing

import (
	"github.com/iwvelando/tour-estimate/internal/estimate"
	"github.com/iwvelando/tour-estimate/pkg/constants"
	"github.com/iwvelando/tour-estimate/pkg/mathutil"
)

// Rooms returns the billable room count for a hotel. Double and triple
// rooms round up; a partially filled room is still billed whole. Single
// and unrecognized accommodation types map one room per traveler.
func Rooms(hotel estimate.Hotel) int {
	if hotel.PaxCount == nil || hotel.AccommodationType == "" {
		return 0
	}

	pax := *hotel.PaxCount
	switch hotel.AccommodationType {
	case constants.AccommodationDouble:
		return mathutil.CeilDiv(pax, constants.DoubleOccupancy)
	case constants.AccommodationTriple:
		return mathutil.CeilDiv(pax, constants.TripleOccupancy)
	default:
		return pax
	}
}

// HotelTotal returns rooms x price per room x nights. A hotel with no
// stated duration is billed for exactly one night.
func HotelTotal(hotel estimate.Hotel) float64 {
	nights := constants.DefaultNights
	if hotel.Nights != nil {
		nights = *hotel.Nights
	}
	return float64(Rooms(hotel)) * hotel.PricePerRoom * float64(nights)
}

// DayTotal sums the activity costs for one tour day.
func DayTotal(day estimate.TourDay) float64 {
	total := 0.0
	for _, activity := range day.Activities {
		total += activity.Cost
	}
	return total
}

// serviceCost resolves an optional service cost, falling back to the
// legacy price alias for documents that were never normalized.
func serviceCost(service estimate.OptionalService) float64 {
	if service.Cost != nil {
		return *service.Cost
	}
	if service.Price != nil {
		return *service.Price
	}
	return 0
}

// BaseCost sums all billable component costs before markup: client hotels
// (guide hotels are overhead, not billed), daily activities, and optional
// services.
func BaseCost(est *estimate.Estimate) float64 {
	if est == nil {
		return 0
	}

	total := 0.0
	for _, hotel := range est.Hotels {
		if hotel.IsGuideHotel {
			continue
		}
		total += HotelTotal(hotel)
	}
	for _, day := range est.TourDays {
		total += DayTotal(day)
	}
	for _, service := range est.OptionalServices {
		total += serviceCost(service)
	}

	return total
}

// MarkupAmount applies the group markup percentage to the base cost. The
// group field is authoritative; the top-level estimate markup is a display
// mirror and never enters the calculation.
func MarkupAmount(est *estimate.Estimate) float64 {
	if est == nil || est.Group == nil {
		return 0
	}
	return mathutil.ApplyPercentage(BaseCost(est), est.Group.Markup)
}

// FinalCost is the client-facing price: base cost plus markup.
func FinalCost(est *estimate.Estimate) float64 {
	return BaseCost(est) + MarkupAmount(est)
}
