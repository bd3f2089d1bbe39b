package estimate

import (
	"strings"
	"time"

	"github.com/iwvelando/tour-estimate/pkg/constants"
	"github.com/iwvelando/tour-estimate/pkg/datetime"
	"github.com/iwvelando/tour-estimate/pkg/identifier"
)

// Prepare returns a normalized copy of the estimate with every optional
// field filled to its documented default. The input is never mutated, and
// preparing an already-prepared estimate yields an identical result.
func Prepare(est *Estimate) *Estimate {
	return PrepareWithClock(est, time.Now(), identifier.NewFlightGenerator())
}

// PrepareWithClock is the injectable variant of Prepare: the clock feeds
// the synthesized label and the generator supplies flight ids.
func PrepareWithClock(est *Estimate, now time.Time, ids identifier.Generator) *Estimate {
	if est == nil {
		return nil
	}

	normalized := est.Clone()

	if normalized.Status == "" {
		normalized.Status = constants.DefaultStatus
	}
	if normalized.Currency == "" {
		normalized.Currency = constants.DefaultCurrency
	}

	// When all three display labels are absent, synthesize one from the
	// clock; otherwise fill the blanks from the first label present.
	label := firstNonBlank(normalized.Name, normalized.Title, normalized.TourName)
	if label == "" {
		label = constants.LabelPrefix + " " + datetime.FormatLabel(now)
	}
	if strings.TrimSpace(normalized.Name) == "" {
		normalized.Name = label
	}
	if strings.TrimSpace(normalized.Title) == "" {
		normalized.Title = label
	}
	if strings.TrimSpace(normalized.TourName) == "" {
		normalized.TourName = label
	}

	if normalized.TourDates.Days == 0 && normalized.TourDates.Duration > 0 {
		normalized.TourDates.Days = normalized.TourDates.Duration
	}

	for i := range normalized.TourDays {
		for j := range normalized.TourDays[i].Activities {
			activity := &normalized.TourDays[i].Activities[j]
			if activity.Cost == 0 && activity.BasePrice != nil {
				activity.Cost = *activity.BasePrice
			}
		}
	}

	// Fold the legacy price alias into cost.
	for i := range normalized.OptionalServices {
		service := &normalized.OptionalServices[i]
		if service.Cost == nil && service.Price != nil {
			cost := *service.Price
			service.Cost = &cost
		}
	}

	for i := range normalized.Flights {
		if normalized.Flights[i].ID == "" {
			normalized.Flights[i].ID = ids()
		}
	}

	return normalized
}

// Clone returns a deep copy of the estimate. Slices and pointer fields are
// duplicated so the copy shares no state with the original.
func (est *Estimate) Clone() *Estimate {
	if est == nil {
		return nil
	}

	clone := *est

	clone.Location.Regions = append([]string(nil), est.Location.Regions...)
	clone.Location.Cities = append([]string(nil), est.Location.Cities...)

	if est.Group != nil {
		group := *est.Group
		group.TotalPax = cloneIntPtr(est.Group.TotalPax)
		clone.Group = &group
	}

	if est.Hotels != nil {
		clone.Hotels = make([]Hotel, len(est.Hotels))
		for i, hotel := range est.Hotels {
			hotel.Nights = cloneIntPtr(hotel.Nights)
			hotel.PaxCount = cloneIntPtr(hotel.PaxCount)
			clone.Hotels[i] = hotel
		}
	}

	if est.TourDays != nil {
		clone.TourDays = make([]TourDay, len(est.TourDays))
		for i, day := range est.TourDays {
			if day.Activities != nil {
				activities := make([]Activity, len(day.Activities))
				for j, activity := range day.Activities {
					activity.BasePrice = cloneFloatPtr(activity.BasePrice)
					activities[j] = activity
				}
				day.Activities = activities
			}
			clone.TourDays[i] = day
		}
	}

	if est.OptionalServices != nil {
		clone.OptionalServices = make([]OptionalService, len(est.OptionalServices))
		for i, service := range est.OptionalServices {
			service.Cost = cloneFloatPtr(service.Cost)
			service.Price = cloneFloatPtr(service.Price)
			clone.OptionalServices[i] = service
		}
	}

	if est.Flights != nil {
		clone.Flights = make([]Flight, len(est.Flights))
		for i, flight := range est.Flights {
			flight.Segments = append([]FlightSegment(nil), flight.Segments...)
			clone.Flights[i] = flight
		}
	}

	return &clone
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
