package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidParameters = errors.New("invalid schedule parameters")

const (
	// DefaultMaxTrips caps TotalQuantity/QuantityPerTrip unless configured otherwise.
	DefaultMaxTrips = 10_000
	// MaxMinutes bounds the start time and every duration field.
	MaxMinutes = 1 << 40
)

// Limits bounds the size of a schedule accepted at the input boundary.
type Limits struct {
	MaxTrips int
}

func DefaultLimits() Limits { return Limits{MaxTrips: DefaultMaxTrips} }

// Input set for one schedule run.
// All durations and timestamps are whole minutes from an arbitrary zero point
// chosen by the caller (e.g. 300 for 05:00).
type Parameters struct {
	StartTime       int
	TotalQuantity   int
	LoadTime        int
	TravelTime      int
	DischargeTime   int
	BufferTime      int
	QuantityPerTrip int
	NumVehicles     int
}

// Validate checks p against DefaultLimits.
func (p Parameters) Validate() error {
	return p.ValidateWithin(DefaultLimits())
}

// ValidateWithin enforces the input-collection rules: durations and start time
// are non-negative and at most MaxMinutes, quantities and the vehicle count are
// positive, the trip count stays within l.MaxTrips and every phase timestamp
// of the resulting schedule fits in an int.
func (p Parameters) ValidateWithin(l Limits) error {
	nonNegative := []struct {
		name  string
		value int
	}{
		{"start_time", p.StartTime},
		{"load_time", p.LoadTime},
		{"travel_time", p.TravelTime},
		{"discharge_time", p.DischargeTime},
		{"buffer_time", p.BufferTime},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidParameters, f.name, f.value)
		}
		if f.value > MaxMinutes {
			return fmt.Errorf("%w: %s must be <= %d, got %d", ErrInvalidParameters, f.name, MaxMinutes, f.value)
		}
	}

	positive := []struct {
		name  string
		value int
	}{
		{"total_quantity", p.TotalQuantity},
		{"quantity_per_trip", p.QuantityPerTrip},
		{"num_vehicles", p.NumVehicles},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalidParameters, f.name, f.value)
		}
	}

	maxTrips := l.MaxTrips
	if maxTrips <= 0 {
		maxTrips = DefaultMaxTrips
	}
	trips := p.TripCount()
	if trips > maxTrips {
		return fmt.Errorf("%w: total_quantity/quantity_per_trip gives %d trips, limit is %d", ErrInvalidParameters, trips, maxTrips)
	}

	// No timestamp exceeds StartTime + trips*cycle; fields are capped at
	// MaxMinutes so cycle itself cannot overflow.
	cycle := p.LoadTime + 2*p.TravelTime + p.BufferTime + p.DischargeTime
	if trips > 0 && cycle > 0 && cycle > (math.MaxInt-p.StartTime)/trips {
		return fmt.Errorf("%w: schedule horizon overflows (start_time %d, %d trips of %d minutes)", ErrInvalidParameters, p.StartTime, trips, cycle)
	}

	return nil
}

// TripCount is the number of full trips TotalQuantity allows; zero when
// either quantity is non-positive.
func (p Parameters) TripCount() int {
	if p.QuantityPerTrip <= 0 || p.TotalQuantity <= 0 {
		return 0
	}
	return p.TotalQuantity / p.QuantityPerTrip
}

// Optional per-field values layered on top of a base Parameters set.
// A nil field keeps the base value.
type ParameterOverrides struct {
	StartTime       *int
	TotalQuantity   *int
	LoadTime        *int
	TravelTime      *int
	DischargeTime   *int
	BufferTime      *int
	QuantityPerTrip *int
	NumVehicles     *int
}

// Apply returns base with every non-nil override copied in.
func (o ParameterOverrides) Apply(base Parameters) Parameters {
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}

	out := base
	set(&out.StartTime, o.StartTime)
	set(&out.TotalQuantity, o.TotalQuantity)
	set(&out.LoadTime, o.LoadTime)
	set(&out.TravelTime, o.TravelTime)
	set(&out.DischargeTime, o.DischargeTime)
	set(&out.BufferTime, o.BufferTime)
	set(&out.QuantityPerTrip, o.QuantityPerTrip)
	set(&out.NumVehicles, o.NumVehicles)
	return out
}
