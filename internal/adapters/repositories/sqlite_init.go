package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"transit-mixer-scheduler/internal/domain"
)

// SQL placeholder flavor of the target database.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// DialectForDriver maps a database/sql driver name to its Dialect.
func DialectForDriver(driver string) Dialect {
	if driver == "pgx" || driver == "postgres" {
		return DialectPostgres
	}
	return DialectSQLite
}

func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Initialize the site profile schema. The DDL is portable across SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProfilesQuery := `
	CREATE TABLE IF NOT EXISTS site_profiles (
		name TEXT PRIMARY KEY,
		load_time INTEGER NOT NULL CHECK (load_time >= 0),
		travel_time INTEGER NOT NULL CHECK (travel_time >= 0),
		discharge_time INTEGER NOT NULL CHECK (discharge_time >= 0),
		buffer_time INTEGER NOT NULL CHECK (buffer_time >= 0),
		quantity_per_trip INTEGER NOT NULL CHECK (quantity_per_trip > 0)
	);
	`

	statements := []string{
		createProfilesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SiteProfileSeed struct {
	Name            string `json:"name"`
	LoadTime        int    `json:"load_time"`
	TravelTime      int    `json:"travel_time"`
	DischargeTime   int    `json:"discharge_time"`
	BufferTime      int    `json:"buffer_time"`
	QuantityPerTrip int    `json:"quantity_per_trip"`
}

func (s SiteProfileSeed) validate() error {
	if s.LoadTime < 0 || s.TravelTime < 0 || s.DischargeTime < 0 || s.BufferTime < 0 {
		return errors.New("durations must be >= 0")
	}
	if s.QuantityPerTrip <= 0 {
		return errors.New("quantity_per_trip must be > 0")
	}
	return nil
}

// LoadProfilesJSON reads and validates site profiles from a JSON seed file.
func LoadProfilesJSON(jsonPath string) ([]domain.SiteProfile, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load site profiles: read %q: %w", jsonPath, err)
	}

	var data []SiteProfileSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load site profiles: parse json: %w", err)
	}

	profiles := make([]domain.SiteProfile, 0, len(data))
	for i, item := range data {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, fmt.Errorf("load site profiles: item at index %d: name cannot be empty", i+1)
		}
		if err := item.validate(); err != nil {
			return nil, fmt.Errorf("load site profiles: item %q: %w", item.Name, err)
		}
		profiles = append(profiles, domain.SiteProfile(item))
	}

	return profiles, nil
}

// Populate the database with site profiles from a JSON file.
func SeedFromJSON(db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed site profiles: read %q: %w", jsonPath, err)
	}

	var data []SiteProfileSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed site profiles: parse json: %w", err)
	}

	rows := make([]SiteProfileSeed, 0, len(data))
	for i, item := range data {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return fmt.Errorf("seed site profiles: item at index %d: name cannot be empty", i+1)
		}
		if err := item.validate(); err != nil {
			return fmt.Errorf("seed site profiles: item %q: %w", item.Name, err)
		}
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed site profiles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ph := make([]string, 6)
	for i := range ph {
		ph[i] = dialect.placeholder(i + 1)
	}

	query := fmt.Sprintf(`
	INSERT INTO site_profiles (
		name,
		load_time,
		travel_time,
		discharge_time,
		buffer_time,
		quantity_per_trip
	)
	VALUES (%s)
	ON CONFLICT (name) DO UPDATE
	SET load_time = excluded.load_time,
		travel_time = excluded.travel_time,
		discharge_time = excluded.discharge_time,
		buffer_time = excluded.buffer_time,
		quantity_per_trip = excluded.quantity_per_trip;
	`, strings.Join(ph, ", "))
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed site profiles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.Name, p.LoadTime, p.TravelTime, p.DischargeTime, p.BufferTime, p.QuantityPerTrip); err != nil {
			return fmt.Errorf("seed site profiles: insert name=%q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed site profiles: commit tx: %w", err)
	}

	return nil
}
