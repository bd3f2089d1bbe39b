// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/tour-estimate/pkg/constants"
)

const (
	// DateLayout is the format expected for estimate dates and is also the
	// output date format.
	DateLayout = constants.DateLayout

	// LabelLayout is the timestamp format used for synthesized estimate labels.
	LabelLayout = constants.LabelLayout
)

// FormatLabel renders a timestamp in the label format, e.g. "05.03.2024, 14:30".
func FormatLabel(t time.Time) string {
	return t.Format(LabelLayout)
}

// DateAfter returns true if firstDate is strictly after secondDate.
func DateAfter(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.After(secondDateT), nil
}
