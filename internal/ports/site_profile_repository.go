package ports

import (
	"context"
	"errors"
	"transit-mixer-scheduler/internal/domain"
)

var ErrProfileNotFound = errors.New("site profile not found")

// Port: a boundary for retrieving stored SiteProfile presets.
type SiteProfileRepository interface {
	// Retrieve all profiles ordered by name.
	ListProfiles(ctx context.Context) ([]domain.SiteProfile, error)
	// Retrieve one profile; returns an error wrapping ErrProfileNotFound when absent.
	GetProfile(ctx context.Context, name string) (domain.SiteProfile, error)
}
