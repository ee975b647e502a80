// Package config manages environment variables.
//
// It reads variables from the process environment (and from a `.env`
// file when present), loads them into structured Go types and validates
// that required values are present so the rest of the application can
// rely on them.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional blocks (observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every LightBnB variable carries.
//
// Keys are lowercased and the prefix removed; nesting uses ".":
//
//	LIGHTBNB_DATABASE.HOST -> database.host -> Config.Database.Host
const EnvPrefix = "LIGHTBNB_"

// ServiceName tags logs and New Relic data for this application.
const ServiceName = "lightbnb"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. When missing,
// DefaultObservabilityConfig is injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Search        SearchConfig         `koanf:"search"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required"`
}

// DefaultSearchLimit applies when search.default_limit is unset.
const DefaultSearchLimit = 10

// SearchConfig tunes list queries. DefaultLimit is used whenever a
// caller asks for no particular limit.
type SearchConfig struct {
	DefaultLimit int `koanf:"default_limit" validate:"omitempty,min=1,max=1000"`
}

// LoadConfig reads the environment into a Config, validates it and
// fills in observability defaults.
//
// Behavior summary:
//   - Loads env vars with prefix LIGHTBNB_
//   - Unmarshals into Config and validates struct tags
//   - Sets the default search limit and observability if missing
//   - Forces service name + environment onto the observability block
//   - Runs the observability block's own validation
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Search.DefaultLimit == 0 {
		mainConfig.Search.DefaultLimit = DefaultSearchLimit
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service naming is fixed so telemetry never splits across names.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// IsLocal reports whether the app runs on a developer machine.
// Local mode turns on SQL query logging.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
