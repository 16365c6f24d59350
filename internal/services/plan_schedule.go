package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/metrics"
	"transit-mixer-scheduler/internal/platform/obs"
	"transit-mixer-scheduler/internal/ports"
)

type PlanScheduleRequest struct {
	// Site names a stored profile whose durations seed the parameters. Optional.
	Site string
	// Base values used before the profile and overrides are applied.
	Defaults  domain.Parameters
	Overrides domain.ParameterOverrides
	// Source labels the caller in metrics (e.g. "api", "cli").
	Source string
}

// Planner resolves request parameters and runs the scheduler.
type Planner struct {
	Profiles ports.SiteProfileRepository
	Metrics  metrics.Recorder
	// MaxTrips caps the trip count of a request; zero means domain.DefaultMaxTrips.
	MaxTrips int
}

// PlanSchedule builds the effective parameters (defaults, then site profile,
// then explicit overrides), validates them and computes the schedule.
//
// Parameters are checked here, at the input boundary; ComputeTrips itself
// never rejects input.
func (p *Planner) PlanSchedule(ctx context.Context, req PlanScheduleRequest) (_ *domain.Schedule, err error) {
	defer obs.Time(ctx, "schedule.Plan")(&err)

	params := req.Defaults

	if site := strings.TrimSpace(req.Site); site != "" {
		if p.Profiles == nil {
			return nil, errors.New("plan schedule: site profiles are not configured")
		}
		profile, err := p.Profiles.GetProfile(ctx, site)
		if err != nil {
			return nil, fmt.Errorf("plan schedule: %w", err)
		}
		params = profile.ApplyTo(params)
	}

	params = req.Overrides.Apply(params)
	if err := params.ValidateWithin(domain.Limits{MaxTrips: p.MaxTrips}); err != nil {
		return nil, fmt.Errorf("plan schedule: %w", err)
	}

	schedule := domain.NewSchedule(params, ComputeTrips(params))

	if p.Metrics != nil {
		source := req.Source
		if source == "" {
			source = "unknown"
		}
		p.Metrics.ObserveSchedule(source, len(schedule.Trips))
	}

	return schedule, nil
}
