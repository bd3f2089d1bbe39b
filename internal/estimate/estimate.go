// Package estimate defines the data structures of a tour estimate document
// and includes functions for loading and normalizing documents.
package estimate

// Estimate is the root document describing a priced tour proposal.
type Estimate struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	TourName    string `json:"tourName" yaml:"tourName"`
	Client      string `json:"client" yaml:"client"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
	Currency    string `json:"currency" yaml:"currency"`

	// Markup mirrors Group.Markup for display purposes; calculations read
	// Group.Markup only.
	Markup float64 `json:"markup" yaml:"markup"`

	Location  Location  `json:"location" yaml:"location"`
	TourDates TourDates `json:"tourDates" yaml:"tourDates"`
	Group     *Group    `json:"group" yaml:"group"`

	Hotels           []Hotel           `json:"hotels" yaml:"hotels"`
	TourDays         []TourDay         `json:"tourDays" yaml:"tourDays"`
	OptionalServices []OptionalService `json:"optionalServices" yaml:"optionalServices"`
	Flights          []Flight          `json:"flights" yaml:"flights"`
}

// Location describes where the tour takes place.
type Location struct {
	Country    string   `json:"country" yaml:"country"`
	Regions    []string `json:"regions" yaml:"regions"`
	Cities     []string `json:"cities" yaml:"cities"`
	StartPoint string   `json:"startPoint" yaml:"startPoint"`
	EndPoint   string   `json:"endPoint" yaml:"endPoint"`
}

// TourDates describes the scheduled or flexible date range of the tour.
type TourDates struct {
	DateType  string `json:"dateType" yaml:"dateType"`
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate" yaml:"endDate"`
	Days      int    `json:"days" yaml:"days"`

	// Duration is a legacy alias for Days; Prepare folds it into Days.
	Duration int `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Group holds the traveler composition. TotalPax is required; a nil
// pointer means the field was absent from the document.
type Group struct {
	TotalPax    *int    `json:"totalPax" yaml:"totalPax"`
	DoubleCount int     `json:"doubleCount" yaml:"doubleCount"`
	SingleCount int     `json:"singleCount" yaml:"singleCount"`
	TripleCount int     `json:"tripleCount" yaml:"tripleCount"`
	ExtraCount  int     `json:"extraCount" yaml:"extraCount"`
	GuidesCount int     `json:"guidesCount" yaml:"guidesCount"`
	Markup      float64 `json:"markup" yaml:"markup"`
}

// Hotel is one lodging entry. Nights and PaxCount are pointers so that an
// absent field is distinguishable from an explicit zero.
type Hotel struct {
	Name              string  `json:"name" yaml:"name"`
	City              string  `json:"city" yaml:"city"`
	Region            string  `json:"region" yaml:"region"`
	AccommodationType string  `json:"accommodationType" yaml:"accommodationType"`
	PricePerRoom      float64 `json:"pricePerRoom" yaml:"pricePerRoom"`
	Nights            *int    `json:"nights" yaml:"nights"`
	PaxCount          *int    `json:"paxCount" yaml:"paxCount"`
	IsGuideHotel      bool    `json:"isGuideHotel" yaml:"isGuideHotel"`
	Description       string  `json:"description" yaml:"description"`
}

// TourDay is one day of the itinerary with its activities.
type TourDay struct {
	DayNumber  int        `json:"dayNumber" yaml:"dayNumber"`
	Date       string     `json:"date" yaml:"date"`
	City       string     `json:"city" yaml:"city"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

// Activity is a single itinerary item. Catalog entries name their price
// field base_price; both shapes decode here.
type Activity struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Cost        float64  `json:"cost" yaml:"cost"`
	BasePrice   *float64 `json:"base_price,omitempty" yaml:"base_price,omitempty" mapstructure:"base_price"`
}

// OptionalService is an add-on offered with the tour. Price is a legacy
// alias for Cost; Prepare folds it into Cost.
type OptionalService struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Cost        *float64 `json:"cost" yaml:"cost"`
	Price       *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	PerPerson   bool     `json:"perPerson" yaml:"perPerson"`
}

// Flight records a priced flight attached to the estimate. Flights are
// carried through normalization but do not enter the billable base cost.
type Flight struct {
	ID               string          `json:"id" yaml:"id"`
	Type             string          `json:"type" yaml:"type"`
	Segments         []FlightSegment `json:"segments" yaml:"segments"`
	Passengers       Passengers      `json:"passengers" yaml:"passengers"`
	CabinClass       string          `json:"cabinClass" yaml:"cabinClass"`
	Baggage          string          `json:"baggage" yaml:"baggage"`
	BasePrice        float64         `json:"basePrice" yaml:"basePrice"`
	Taxes            float64         `json:"taxes" yaml:"taxes"`
	Fees             float64         `json:"fees" yaml:"fees"`
	FinalPrice       float64         `json:"finalPrice" yaml:"finalPrice"`
	TotalDistance    float64         `json:"totalDistance" yaml:"totalDistance"`
	TotalDuration    string          `json:"totalDuration" yaml:"totalDuration"`
	TotalConnections int             `json:"totalConnections" yaml:"totalConnections"`
	Airline          string          `json:"airline" yaml:"airline"`
	Notes            string          `json:"notes" yaml:"notes"`
}

// Passengers breaks down the traveler count on a flight.
type Passengers struct {
	Adult  int `json:"adult" yaml:"adult"`
	Child  int `json:"child" yaml:"child"`
	Infant int `json:"infant" yaml:"infant"`
}

// FlightSegment is one leg of a flight.
type FlightSegment struct {
	Origin        string `json:"origin" yaml:"origin"`
	Destination   string `json:"destination" yaml:"destination"`
	DepartureDate string `json:"departureDate" yaml:"departureDate"`
	ArrivalDate   string `json:"arrivalDate" yaml:"arrivalDate"`
	Airline       string `json:"airline" yaml:"airline"`
	FlightNumber  string `json:"flightNumber" yaml:"flightNumber"`
}

// Update is a partial estimate document carrying only the fields being
// changed. A nil pointer means the field was absent from the update and
// must not be checked or defaulted.
type Update struct {
	Name      *string    `json:"name,omitempty" yaml:"name,omitempty"`
	Title     *string    `json:"title,omitempty" yaml:"title,omitempty"`
	Group     *Group     `json:"group,omitempty" yaml:"group,omitempty"`
	Hotels    []Hotel    `json:"hotels,omitempty" yaml:"hotels,omitempty"`
	TourDates *TourDates `json:"tourDates,omitempty" yaml:"tourDates,omitempty"`
	Markup    *float64   `json:"markup,omitempty" yaml:"markup,omitempty"`
}
