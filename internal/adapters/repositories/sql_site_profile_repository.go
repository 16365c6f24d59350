package repositories

import (
	"context"
	"database/sql"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/obs"
	"transit-mixer-scheduler/internal/ports"
)

// SQLSiteProfileRepository is a Postgres-backed SiteProfileRepository
// (pgx stdlib driver, $n placeholders).
type SQLSiteProfileRepository struct {
	DB *sql.DB
}

func NewSQLSiteProfileRepository(db *sql.DB) *SQLSiteProfileRepository {
	return &SQLSiteProfileRepository{DB: db}
}

func (s *SQLSiteProfileRepository) ListProfiles(ctx context.Context) (_ []domain.SiteProfile, err error) {
	defer obs.Time(ctx, "profiles.sql.List")(&err)
	return listProfiles(ctx, s.DB)
}

func (s *SQLSiteProfileRepository) GetProfile(ctx context.Context, name string) (_ domain.SiteProfile, err error) {
	defer obs.Time(ctx, "profiles.sql.Get")(&err)
	return getProfile(ctx, s.DB, DialectPostgres, name)
}

// NewSiteProfileRepository picks the adapter matching the database/sql driver.
func NewSiteProfileRepository(db *sql.DB, driver string) ports.SiteProfileRepository {
	if DialectForDriver(driver) == DialectPostgres {
		return NewSQLSiteProfileRepository(db)
	}
	return NewSqliteSiteProfileRepository(db)
}
