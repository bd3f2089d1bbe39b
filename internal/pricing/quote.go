package pricing

import (
	"go.uber.org/zap"

	"github.com/iwvelando/tour-estimate/internal/estimate"
	"github.com/iwvelando/tour-estimate/pkg/constants"
)

// Quote is the itemized pricing breakdown of one estimate.
type Quote struct {
	Name          string
	Currency      string
	HotelLines    []HotelLine
	DayLines      []DayLine
	ServiceLines  []ServiceLine
	BaseCost      float64
	MarkupPercent float64
	MarkupAmount  float64
	FinalCost     float64
}

// HotelLine is the priced breakdown of one hotel entry.
type HotelLine struct {
	Name         string
	City         string
	Rooms        int
	Nights       int
	PricePerRoom float64
	Total        float64

	// Excluded marks guide hotels, whose cost never reaches the base.
	Excluded bool
}

// DayLine is the priced breakdown of one tour day.
type DayLine struct {
	DayNumber  int
	Date       string
	City       string
	Activities int
	Total      float64
}

// ServiceLine is the priced breakdown of one optional service.
type ServiceLine struct {
	Name      string
	PerPerson bool
	Total     float64
}

// BuildQuote derives the full itemized breakdown for an estimate. The
// totals equal what the standalone calculation functions return.
func BuildQuote(logger *zap.Logger, est *estimate.Estimate) Quote {
	if logger == nil {
		logger = zap.NewNop()
	}

	var quote Quote
	if est == nil {
		return quote
	}

	quote.Name = est.Name
	quote.Currency = est.Currency

	for _, hotel := range est.Hotels {
		nights := constants.DefaultNights
		if hotel.Nights != nil {
			nights = *hotel.Nights
		}
		quote.HotelLines = append(quote.HotelLines, HotelLine{
			Name:         hotel.Name,
			City:         hotel.City,
			Rooms:        Rooms(hotel),
			Nights:       nights,
			PricePerRoom: hotel.PricePerRoom,
			Total:        HotelTotal(hotel),
			Excluded:     hotel.IsGuideHotel,
		})
	}

	for _, day := range est.TourDays {
		quote.DayLines = append(quote.DayLines, DayLine{
			DayNumber:  day.DayNumber,
			Date:       day.Date,
			City:       day.City,
			Activities: len(day.Activities),
			Total:      DayTotal(day),
		})
	}

	for _, service := range est.OptionalServices {
		quote.ServiceLines = append(quote.ServiceLines, ServiceLine{
			Name:      service.Name,
			PerPerson: service.PerPerson,
			Total:     serviceCost(service),
		})
	}

	quote.BaseCost = BaseCost(est)
	if est.Group != nil {
		quote.MarkupPercent = est.Group.Markup
	}
	quote.MarkupAmount = MarkupAmount(est)
	quote.FinalCost = FinalCost(est)

	logger.Debug("quote computed",
		zap.String("op", "pricing.BuildQuote"),
		zap.Int("hotels", len(quote.HotelLines)),
		zap.Int("days", len(quote.DayLines)),
		zap.Int("services", len(quote.ServiceLines)),
		zap.Float64("finalCost", quote.FinalCost),
	)

	return quote
}
