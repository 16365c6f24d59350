package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func validParameters() Parameters {
	return Parameters{
		StartTime:       300,
		TotalQuantity:   40,
		LoadTime:        5,
		TravelTime:      20,
		DischargeTime:   15,
		BufferTime:      5,
		QuantityPerTrip: 10,
		NumVehicles:     2,
	}
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Parameters)
		wantErr string
	}{
		{name: "valid", mutate: func(p *Parameters) {}},
		{name: "zero durations allowed", mutate: func(p *Parameters) {
			p.StartTime, p.LoadTime, p.TravelTime, p.DischargeTime, p.BufferTime = 0, 0, 0, 0, 0
		}},
		{name: "negative start", mutate: func(p *Parameters) { p.StartTime = -1 }, wantErr: "start_time"},
		{name: "negative travel", mutate: func(p *Parameters) { p.TravelTime = -5 }, wantErr: "travel_time"},
		{name: "negative buffer", mutate: func(p *Parameters) { p.BufferTime = -5 }, wantErr: "buffer_time"},
		{name: "zero total", mutate: func(p *Parameters) { p.TotalQuantity = 0 }, wantErr: "total_quantity"},
		{name: "zero per trip", mutate: func(p *Parameters) { p.QuantityPerTrip = 0 }, wantErr: "quantity_per_trip"},
		{name: "zero vehicles", mutate: func(p *Parameters) { p.NumVehicles = 0 }, wantErr: "num_vehicles"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validParameters()
			tc.mutate(&p)

			err := p.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error mentioning %q, got nil", tc.wantErr)
			}
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("error %v does not wrap ErrInvalidParameters", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParameterOverridesApply(t *testing.T) {
	base := validParameters()
	total, vehicles := 95, 4

	got := ParameterOverrides{TotalQuantity: &total, NumVehicles: &vehicles}.Apply(base)

	if got.TotalQuantity != 95 {
		t.Errorf("TotalQuantity = %d, want 95", got.TotalQuantity)
	}
	if got.NumVehicles != 4 {
		t.Errorf("NumVehicles = %d, want 4", got.NumVehicles)
	}
	if got.LoadTime != base.LoadTime || got.StartTime != base.StartTime {
		t.Errorf("unset fields changed: got %+v, base %+v", got, base)
	}
	if base.TotalQuantity != 40 {
		t.Errorf("base mutated: TotalQuantity = %d", base.TotalQuantity)
	}
}

func TestSiteProfileApplyTo(t *testing.T) {
	profile := SiteProfile{
		Name:            "north-tower",
		LoadTime:        8,
		TravelTime:      35,
		DischargeTime:   25,
		BufferTime:      10,
		QuantityPerTrip: 7,
	}

	got := profile.ApplyTo(validParameters())

	want := Parameters{
		StartTime:       300,
		TotalQuantity:   40,
		LoadTime:        8,
		TravelTime:      35,
		DischargeTime:   25,
		BufferTime:      10,
		QuantityPerTrip: 7,
		NumVehicles:     2,
	}
	if got != want {
		t.Fatalf("ApplyTo = %+v, want %+v", got, want)
	}
}

func TestParametersValidateTripLimit(t *testing.T) {
	p := validParameters()
	p.TotalQuantity = 1 << 50
	p.QuantityPerTrip = 1

	err := p.Validate()
	if !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("err = %v, want ErrInvalidParameters", err)
	}
	if !strings.Contains(err.Error(), "limit") {
		t.Errorf("error %q does not mention the trip limit", err)
	}

	p.TotalQuantity = DefaultMaxTrips
	if err := p.Validate(); err != nil {
		t.Fatalf("exactly DefaultMaxTrips trips rejected: %v", err)
	}

	if err := p.ValidateWithin(Limits{MaxTrips: 50}); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("ValidateWithin(50) err = %v, want ErrInvalidParameters", err)
	}
}

func TestParametersValidateBoundsMinutes(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Parameters)
		wantErr string
	}{
		{name: "start near max int", mutate: func(p *Parameters) { p.StartTime = math.MaxInt - 30 }, wantErr: "start_time"},
		{name: "huge travel", mutate: func(p *Parameters) { p.TravelTime = MaxMinutes + 1 }, wantErr: "travel_time"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validParameters()
			tc.mutate(&p)

			err := p.Validate()
			if !errors.Is(err, ErrInvalidParameters) {
				t.Fatalf("err = %v, want ErrInvalidParameters", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParametersValidateHorizonOverflow(t *testing.T) {
	p := validParameters()
	p.StartTime = MaxMinutes
	p.LoadTime, p.TravelTime, p.DischargeTime, p.BufferTime = MaxMinutes, MaxMinutes, MaxMinutes, MaxMinutes
	p.QuantityPerTrip = 1
	p.TotalQuantity = 1 << 30

	err := p.ValidateWithin(Limits{MaxTrips: 1 << 30})
	if !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("err = %v, want ErrInvalidParameters", err)
	}
	if !strings.Contains(err.Error(), "horizon") {
		t.Errorf("error %q does not mention the horizon", err)
	}

	// The default trip limit keeps the largest allowed fields in range.
	p.TotalQuantity = DefaultMaxTrips
	if err := p.Validate(); err != nil {
		t.Fatalf("largest fields at DefaultMaxTrips rejected: %v", err)
	}
}

func TestParametersTripCount(t *testing.T) {
	p := validParameters()
	p.TotalQuantity = 49
	if got := p.TripCount(); got != 4 {
		t.Errorf("TripCount = %d, want 4", got)
	}

	p.QuantityPerTrip = 0
	if got := p.TripCount(); got != 0 {
		t.Errorf("TripCount with zero per trip = %d, want 0", got)
	}
}
