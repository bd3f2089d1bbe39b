// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/tour-estimate/internal/estimate"
	"github.com/iwvelando/tour-estimate/internal/pricing"
)

// IntPtr returns a pointer to the given int.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr returns a pointer to the given float64.
func FloatPtr(v float64) *float64 {
	return &v
}

// SampleEstimate builds the canonical worked example: a double hotel for
// six travelers, an excluded guide hotel, one day of activities, one
// optional service, and a 15% group markup. Its base cost is 2650 and its
// final cost 3047.50.
func SampleEstimate() *estimate.Estimate {
	return &estimate.Estimate{
		Name:     "Classic Uzbekistan",
		Status:   "draft",
		Currency: "USD",
		Group:    &estimate.Group{TotalPax: IntPtr(6), Markup: 15},
		TourDates: estimate.TourDates{
			DateType:  "exact",
			StartDate: "2024-05-10",
			EndDate:   "2024-05-17",
			Days:      7,
		},
		Hotels: []estimate.Hotel{
			{Name: "Hotel Registan", City: "Samarkand", AccommodationType: "double", PaxCount: IntPtr(6), PricePerRoom: 250, Nights: IntPtr(3)},
			{Name: "Guide House", City: "Samarkand", AccommodationType: "single", PaxCount: IntPtr(2), PricePerRoom: 180, Nights: IntPtr(3), IsGuideHotel: true},
		},
		TourDays: []estimate.TourDay{
			{DayNumber: 1, Date: "2024-05-10", City: "Tashkent", Activities: []estimate.Activity{
				{Name: "City tour", Cost: 120},
				{Name: "Folk show", Cost: 200},
			}},
		},
		OptionalServices: []estimate.OptionalService{
			{Name: "Airport transfer", Cost: FloatPtr(80)},
		},
	}
}

// FindHotelLine finds a hotel line by name in a quote.
// Returns a pointer to the line if found, nil otherwise.
func FindHotelLine(quote pricing.Quote, name string) *pricing.HotelLine {
	for i := range quote.HotelLines {
		if quote.HotelLines[i].Name == name {
			return &quote.HotelLines[i]
		}
	}
	return nil
}
