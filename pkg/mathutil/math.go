// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"github.com/iwvelando/tour-estimate/pkg/constants"
)

// CeilDiv divides count by groupSize and rounds up. A partially filled
// group still counts as a whole group. Non-positive groupSize returns
// count unchanged.
func CeilDiv(count, groupSize int) int {
	if groupSize <= 0 {
		return count
	}
	return (count + groupSize - 1) / groupSize
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
