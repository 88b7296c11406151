package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"go.uber.org/multierr"
)

// Backends accepted by DATA_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	// HTTP server
	Addr string

	// Storage
	DataBackend  string
	DatabaseURL  string
	SQLiteDBPath string

	// Clock used for "now" when a request does not pin one.
	TimeZone string

	// Sample data
	SeedSample bool
	SampleSeed int64

	// Logging
	LogLevel    string
	LogFile     string
	LogToStdout bool
	LogJSON     bool
}

// Load reads the configuration from the environment.
// SEED_SAMPLE defaults to true only for the in-memory backend.
func Load() *Config {
	backend := getEnv("DATA_BACKEND", BackendMemory)
	return &Config{
		Addr: getEnv("ADDR", ":8080"),

		DataBackend:  backend,
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/weightlog.db"),

		TimeZone: getEnv("TZ_NAME", "Local"),

		SeedSample: getEnvBool("SEED_SAMPLE", backend == BackendMemory),
		SampleSeed: getEnvInt64("SAMPLE_SEED", 0),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		LogToStdout: getEnvBool("LOG_TO_STDOUT", false),
		LogJSON:     getEnvBool("LOG_JSON", false),
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var err error

	if c.Addr == "" {
		err = multierr.Append(err, fmt.Errorf("ADDR cannot be empty"))
	}

	switch c.DataBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			err = multierr.Append(err, fmt.Errorf("DATABASE_URL is required for the postgres backend"))
		}
	case BackendSQLite:
		switch {
		case c.SQLiteDBPath == "":
			err = multierr.Append(err, fmt.Errorf("SQLITE_DB_PATH is required for the sqlite backend"))
		case isSQLiteMemoryPath(c.SQLiteDBPath):
			err = multierr.Append(err, fmt.Errorf("SQLITE_DB_PATH %q: in-memory sqlite is not supported, use DATA_BACKEND=memory", c.SQLiteDBPath))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("invalid data backend %q: must be one of memory, postgres, sqlite", c.DataBackend))
	}

	if _, locErr := c.Location(); locErr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid TZ_NAME %q: %w", c.TimeZone, locErr))
	}

	return err
}

func isSQLiteMemoryPath(p string) bool {
	return p == ":memory:" || strings.HasPrefix(p, "file::memory:") || strings.Contains(p, "mode=memory")
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
