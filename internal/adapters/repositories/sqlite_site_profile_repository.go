package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/obs"
	"transit-mixer-scheduler/internal/ports"
)

const selectProfileColumns = `
	SELECT
		name,
		load_time,
		travel_time,
		discharge_time,
		buffer_time,
		quantity_per_trip
	FROM site_profiles
`

// SQLite-backed implementation of the SiteProfileRepository port.
type SqliteSiteProfileRepository struct{ DB *sql.DB }

func NewSqliteSiteProfileRepository(db *sql.DB) *SqliteSiteProfileRepository {
	return &SqliteSiteProfileRepository{DB: db}
}

// Return all profiles stored in the database.
func (s *SqliteSiteProfileRepository) ListProfiles(ctx context.Context) (_ []domain.SiteProfile, err error) {
	defer obs.Time(ctx, "profiles.sqlite.List")(&err)
	return listProfiles(ctx, s.DB)
}

// Return the profile stored under name.
func (s *SqliteSiteProfileRepository) GetProfile(ctx context.Context, name string) (_ domain.SiteProfile, err error) {
	defer obs.Time(ctx, "profiles.sqlite.Get")(&err)
	return getProfile(ctx, s.DB, DialectSQLite, name)
}

func listProfiles(ctx context.Context, db *sql.DB) ([]domain.SiteProfile, error) {
	if db == nil {
		return nil, errors.New("list site profiles: DB is nil")
	}

	rows, err := db.QueryContext(ctx, selectProfileColumns+"ORDER BY name;")
	if err != nil {
		return nil, fmt.Errorf("list site profiles: query site_profiles table: %w", err)
	}
	defer rows.Close()

	profiles := make([]domain.SiteProfile, 0, 16)
	for rows.Next() {
		var p domain.SiteProfile
		if err := rows.Scan(&p.Name, &p.LoadTime, &p.TravelTime, &p.DischargeTime, &p.BufferTime, &p.QuantityPerTrip); err != nil {
			return nil, fmt.Errorf("list site profiles: scan row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list site profiles: row iteration: %w", err)
	}

	return profiles, nil
}

func getProfile(ctx context.Context, db *sql.DB, dialect Dialect, name string) (domain.SiteProfile, error) {
	if db == nil {
		return domain.SiteProfile{}, errors.New("get site profile: DB is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SiteProfile{}, errors.New("get site profile: name must be non-empty")
	}

	q := selectProfileColumns + "WHERE name = " + dialect.placeholder(1) + ";"

	var p domain.SiteProfile
	err := db.QueryRowContext(ctx, q, name).
		Scan(&p.Name, &p.LoadTime, &p.TravelTime, &p.DischargeTime, &p.BufferTime, &p.QuantityPerTrip)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SiteProfile{}, fmt.Errorf("get site profile %q: %w", name, ports.ErrProfileNotFound)
	}
	if err != nil {
		return domain.SiteProfile{}, fmt.Errorf("get site profile %q: %w", name, err)
	}

	return p, nil
}
