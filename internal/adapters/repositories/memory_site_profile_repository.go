package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/ports"
)

// In-memory SiteProfileRepository for tests and database-less CLI runs.
type MemorySiteProfileRepository struct {
	m map[string]domain.SiteProfile
}

func NewMemorySiteProfileRepository(profiles []domain.SiteProfile) *MemorySiteProfileRepository {
	m := make(map[string]domain.SiteProfile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
	}
	return &MemorySiteProfileRepository{m: m}
}

func (r *MemorySiteProfileRepository) ListProfiles(ctx context.Context) ([]domain.SiteProfile, error) {
	out := make([]domain.SiteProfile, 0, len(r.m))
	for _, p := range r.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemorySiteProfileRepository) GetProfile(ctx context.Context, name string) (domain.SiteProfile, error) {
	p, ok := r.m[strings.TrimSpace(name)]
	if !ok {
		return domain.SiteProfile{}, fmt.Errorf("get site profile %q: %w", name, ports.ErrProfileNotFound)
	}
	return p, nil
}
