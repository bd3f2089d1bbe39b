package integration

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/tour-estimate/internal/estimate"
	"github.com/iwvelando/tour-estimate/internal/pricing"
	"github.com/iwvelando/tour-estimate/pkg/identifier"
	"github.com/iwvelando/tour-estimate/pkg/output"
	"github.com/iwvelando/tour-estimate/pkg/testutil"
	"github.com/iwvelando/tour-estimate/pkg/validation"
)

const estimateYAML = `
estimate:
  name: Classic Uzbekistan
  currency: USD
  group:
    totalPax: 6
    markup: 15
  hotels:
    - name: Hotel Registan
      city: Samarkand
      accommodationType: double
      pricePerRoom: 250
      nights: 3
      paxCount: 6
    - name: Guide House
      accommodationType: single
      pricePerRoom: 180
      nights: 3
      paxCount: 2
      isGuideHotel: true
  tourDays:
    - dayNumber: 1
      date: "2024-05-10"
      activities:
        - name: City tour
          cost: 120
        - name: Folk show
          cost: 200
  optionalServices:
    - name: Airport transfer
      price: 80
  flights:
    - type: one-way
      airline: HY
`

func TestFullPipeline(t *testing.T) {
	document, err := estimate.LoadDocumentFromReader(strings.NewReader(estimateYAML))
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}

	if errors := validation.ValidateEstimate(&document.Estimate); len(errors) != 0 {
		t.Fatalf("document failed validation: %v", errors)
	}

	fixed := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	prepared := estimate.PrepareWithClock(&document.Estimate, fixed, identifier.NewSequenceGenerator("flight_it"))

	if prepared.Flights[0].ID != "flight_it_1" {
		t.Errorf("flight id = %q, expected assignment during preparation", prepared.Flights[0].ID)
	}
	if prepared.OptionalServices[0].Cost == nil || *prepared.OptionalServices[0].Cost != 80 {
		t.Errorf("legacy service price not folded into cost: %+v", prepared.OptionalServices[0])
	}

	quote := pricing.BuildQuote(nil, prepared)

	if math.Abs(quote.BaseCost-2650) > 0.01 {
		t.Errorf("BaseCost = %v, expected 2650", quote.BaseCost)
	}
	// The loaded document prices identically to the canonical fixture.
	if canonical := pricing.FinalCost(testutil.SampleEstimate()); math.Abs(quote.FinalCost-canonical) > 0.001 {
		t.Errorf("FinalCost = %v diverges from the canonical fixture %v", quote.FinalCost, canonical)
	}

	guide := testutil.FindHotelLine(quote, "Guide House")
	if guide == nil {
		t.Fatal("no hotel line for Guide House")
	}
	if !guide.Excluded {
		t.Errorf("guide hotel not excluded from the base")
	}
	if math.Abs(quote.MarkupAmount-397.5) > 0.01 {
		t.Errorf("MarkupAmount = %v, expected 397.5", quote.MarkupAmount)
	}
	if math.Abs(quote.FinalCost-3047.5) > 0.01 {
		t.Errorf("FinalCost = %v, expected 3047.5", quote.FinalCost)
	}

	csv := output.CsvString(quote)
	if !strings.Contains(csv, `"total","final cost","","","3,047.50",""`) {
		t.Errorf("CSV output missing final cost row:\n%s", csv)
	}
	if !strings.Contains(csv, `"hotel","Guide House","2","3","1,080.00","guide hotel, not billed"`) {
		t.Errorf("CSV output missing excluded guide hotel row:\n%s", csv)
	}
}

func TestPipelineBlocksInvalidDocument(t *testing.T) {
	document, err := estimate.LoadDocumentFromReader(strings.NewReader(`
estimate:
  name: Broken
  group:
    totalPax: 0
  hotels:
    - pricePerRoom: -10
`))
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}

	errors := validation.ValidateEstimate(&document.Estimate)
	expected := []string{
		"Total passengers must be greater than 0",
		"Hotel 1: name is required",
		"Hotel 1: price per room cannot be negative",
	}
	if len(errors) != len(expected) {
		t.Fatalf("validation errors = %v, expected %v", errors, expected)
	}

	// Calculation still tolerates the invalid document without panicking.
	if final := pricing.FinalCost(&document.Estimate); math.IsNaN(final) {
		t.Errorf("FinalCost produced NaN for invalid document")
	}
}
