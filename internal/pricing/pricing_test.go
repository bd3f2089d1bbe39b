package pricing_test

import (
	"math"
	"testing"

	"github.com/iwvelando/tour-estimate/internal/estimate"
	"github.com/iwvelando/tour-estimate/internal/pricing"
	"github.com/iwvelando/tour-estimate/pkg/testutil"
)

func TestRooms(t *testing.T) {
	tests := []struct {
		name     string
		hotel    estimate.Hotel
		expected int
	}{
		{"Double even pax", estimate.Hotel{AccommodationType: "double", PaxCount: testutil.IntPtr(6)}, 3},
		{"Double odd pax rounds up", estimate.Hotel{AccommodationType: "double", PaxCount: testutil.IntPtr(5)}, 3},
		{"Double single traveler", estimate.Hotel{AccommodationType: "double", PaxCount: testutil.IntPtr(1)}, 1},
		{"Triple with remainder", estimate.Hotel{AccommodationType: "triple", PaxCount: testutil.IntPtr(8)}, 3},
		{"Triple exact", estimate.Hotel{AccommodationType: "triple", PaxCount: testutil.IntPtr(9)}, 3},
		{"Single one per person", estimate.Hotel{AccommodationType: "single", PaxCount: testutil.IntPtr(2)}, 2},
		{"Unrecognized type falls back to one per person", estimate.Hotel{AccommodationType: "dooble", PaxCount: testutil.IntPtr(4)}, 4},
		{"Missing pax count", estimate.Hotel{AccommodationType: "double"}, 0},
		{"Missing accommodation type", estimate.Hotel{PaxCount: testutil.IntPtr(4)}, 0},
		{"Zero pax", estimate.Hotel{AccommodationType: "double", PaxCount: testutil.IntPtr(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := pricing.Rooms(tt.hotel); result != tt.expected {
				t.Errorf("Rooms(%+v) = %d, expected %d", tt.hotel, result, tt.expected)
			}
		})
	}
}

func TestHotelTotal(t *testing.T) {
	tests := []struct {
		name     string
		hotel    estimate.Hotel
		expected float64
	}{
		{
			"Double six pax three nights",
			estimate.Hotel{AccommodationType: "double", PaxCount: testutil.IntPtr(6), PricePerRoom: 250, Nights: testutil.IntPtr(3)},
			2250,
		},
		{
			"Missing nights bills one night",
			estimate.Hotel{AccommodationType: "double", PaxCount: testutil.IntPtr(6), PricePerRoom: 250},
			750,
		},
		{
			"Missing price contributes nothing",
			estimate.Hotel{AccommodationType: "double", PaxCount: testutil.IntPtr(6), Nights: testutil.IntPtr(3)},
			0,
		},
		{
			"Missing pax contributes nothing",
			estimate.Hotel{AccommodationType: "double", PricePerRoom: 250, Nights: testutil.IntPtr(3)},
			0,
		},
		{
			"Single two pax",
			estimate.Hotel{AccommodationType: "single", PaxCount: testutil.IntPtr(2), PricePerRoom: 180, Nights: testutil.IntPtr(3)},
			1080,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pricing.HotelTotal(tt.hotel)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("HotelTotal(%+v) = %v, expected %v", tt.hotel, result, tt.expected)
			}
		})
	}
}

func TestDayTotal(t *testing.T) {
	tests := []struct {
		name     string
		day      estimate.TourDay
		expected float64
	}{
		{
			"Two activities",
			estimate.TourDay{Activities: []estimate.Activity{{Cost: 120}, {Cost: 200}}},
			320,
		},
		{"No activities", estimate.TourDay{}, 0},
		{"Zero-cost activities", estimate.TourDay{Activities: []estimate.Activity{{Name: "Free walk"}}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pricing.DayTotal(tt.day)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("DayTotal(%+v) = %v, expected %v", tt.day, result, tt.expected)
			}
		})
	}
}

func TestBaseCost(t *testing.T) {
	// Hotel Registan only (2250) + activities (320) + service (80); the
	// guide hotel never reaches the base.
	result := pricing.BaseCost(testutil.SampleEstimate())
	if math.Abs(result-2650) > 0.01 {
		t.Errorf("BaseCost() = %v, expected 2650", result)
	}
}

func TestBaseCostLegacyServicePrice(t *testing.T) {
	est := &estimate.Estimate{
		OptionalServices: []estimate.OptionalService{
			{Name: "Transfer", Price: testutil.FloatPtr(80)},
			{Name: "Both fields prefers cost", Cost: testutil.FloatPtr(50), Price: testutil.FloatPtr(999)},
			{Name: "Neither field"},
		},
	}
	result := pricing.BaseCost(est)
	if math.Abs(result-130) > 0.01 {
		t.Errorf("BaseCost() = %v, expected 130", result)
	}
}

func TestMarkupAmount(t *testing.T) {
	result := pricing.MarkupAmount(testutil.SampleEstimate())
	if math.Abs(result-397.5) > 0.01 {
		t.Errorf("MarkupAmount() = %v, expected 397.5", result)
	}
}

func TestMarkupAmountUsesGroupMarkup(t *testing.T) {
	est := testutil.SampleEstimate()
	// The top-level markup is a display mirror; only group.markup counts.
	est.Markup = 99
	est.Group.Markup = 10

	result := pricing.MarkupAmount(est)
	if math.Abs(result-265) > 0.01 {
		t.Errorf("MarkupAmount() = %v, expected 265 from group markup", result)
	}
}

func TestMarkupAmountMissingGroup(t *testing.T) {
	est := testutil.SampleEstimate()
	est.Group = nil
	if result := pricing.MarkupAmount(est); result != 0 {
		t.Errorf("MarkupAmount() = %v, expected 0 without group", result)
	}
}

func TestFinalCost(t *testing.T) {
	result := pricing.FinalCost(testutil.SampleEstimate())
	if math.Abs(result-3047.5) > 0.01 {
		t.Errorf("FinalCost() = %v, expected 3047.5", result)
	}
}

func TestCalculationsNeverNaN(t *testing.T) {
	estimates := []*estimate.Estimate{
		nil,
		{},
		{
			Hotels: []estimate.Hotel{
				{AccommodationType: "double"},
				{PaxCount: testutil.IntPtr(0), AccommodationType: "triple"},
				{Name: "Broken", PricePerRoom: -50, PaxCount: testutil.IntPtr(3), AccommodationType: "double"},
			},
			TourDays:         []estimate.TourDay{{}},
			OptionalServices: []estimate.OptionalService{{}},
		},
	}

	for _, est := range estimates {
		for name, result := range map[string]float64{
			"BaseCost":     pricing.BaseCost(est),
			"MarkupAmount": pricing.MarkupAmount(est),
			"FinalCost":    pricing.FinalCost(est),
		} {
			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Errorf("%s produced non-finite result %v for %+v", name, result, est)
			}
		}
	}
}
