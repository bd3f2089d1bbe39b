// Package identifier provides id generation for estimate sub-records.
// Generators are injectable so that tests can supply deterministic ids.
package identifier

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// flightIDRandomLength is the length of the random base36 suffix.
const flightIDRandomLength = 9

// Generator produces a unique identifier per call.
type Generator func() string

// NewFlightGenerator returns a Generator producing ids of the form
// flight_<epoch-ms>_<random-base36>, seeded from the wall clock.
func NewFlightGenerator() Generator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewFlightGeneratorWithSource(time.Now, rng)
}

// NewFlightGeneratorWithSource returns a flight id Generator with an
// injectable clock and random source.
func NewFlightGeneratorWithSource(now func() time.Time, rng *rand.Rand) Generator {
	return func() string {
		return fmt.Sprintf("flight_%d_%s", now().UnixMilli(), randomBase36(rng, flightIDRandomLength))
	}
}

// NewSequenceGenerator returns a Generator producing deterministic ids
// <prefix>_1, <prefix>_2, ... for use in tests.
func NewSequenceGenerator(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s_%d", prefix, n)
	}
}

func randomBase36(rng *rand.Rand, length int) string {
	s := strconv.FormatInt(rng.Int63(), 36)
	for len(s) < length {
		s += strconv.FormatInt(rng.Int63(), 36)
	}
	return s[:length]
}
