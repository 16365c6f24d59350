package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"transit-mixer-scheduler/internal/domain"
)

const envPrefix = "TMS_"

type DBConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type DefaultsConfig struct {
	NumVehicles int `json:"num_vehicles"`
}

type LimitsConfig struct {
	MaxTrips int `json:"max_trips"`
}

type Config struct {
	Port     string         `json:"port"`
	SeedPath string         `json:"seed_path"`
	DB       DBConfig       `json:"db"`
	Log      LogConfig      `json:"log"`
	Defaults DefaultsConfig `json:"defaults"`
	Limits   LimitsConfig   `json:"limits"`
}

// LoadDotenv loads a .env file if present. A missing file is not an error.
func LoadDotenv() bool {
	return godotenv.Load() == nil
}

// Load layers an optional YAML/JSON file (path may be empty) and TMS_*
// environment variables, then fills defaults. Nested keys use a double
// underscore: TMS_DB__DSN sets db.dsn.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("load config: unsupported format %q", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load config: environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults fills unset fields, honoring the plain PORT, DATABASE_URL,
// DB_PATH and SEED_PATH variables used by local runs.
func (c *Config) SetDefaults() {
	if c.Port == "" {
		c.Port = Get("PORT", "8080")
	}
	if c.SeedPath == "" {
		c.SeedPath = Get("SEED_PATH", "data/seeds/site_profiles.json")
	}
	if c.DB.Driver == "" {
		if os.Getenv("DATABASE_URL") != "" {
			c.DB.Driver = "pgx"
		} else {
			c.DB.Driver = "sqlite"
		}
	}
	if c.DB.DSN == "" {
		if c.DB.Driver == "pgx" {
			c.DB.DSN = os.Getenv("DATABASE_URL")
		} else {
			c.DB.DSN = Get("DB_PATH", "data/app.db")
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Defaults.NumVehicles == 0 {
		c.Defaults.NumVehicles = 1
	}
	if c.Limits.MaxTrips == 0 {
		c.Limits.MaxTrips = domain.DefaultMaxTrips
	}
}

func (c *Config) Validate() error {
	if c.DB.Driver != "sqlite" && c.DB.Driver != "pgx" {
		return fmt.Errorf("db.driver must be sqlite or pgx, got %q", c.DB.Driver)
	}
	if strings.TrimSpace(c.DB.DSN) == "" {
		return errors.New("db.dsn is required")
	}
	if c.Defaults.NumVehicles < 1 {
		return fmt.Errorf("defaults.num_vehicles must be >= 1, got %d", c.Defaults.NumVehicles)
	}
	if c.Limits.MaxTrips < 1 {
		return fmt.Errorf("limits.max_trips must be >= 1, got %d", c.Limits.MaxTrips)
	}
	return nil
}

// Get returns the environment value for key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
