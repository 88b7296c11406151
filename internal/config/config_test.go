package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "DATA_BACKEND", "TZ_NAME", "SEED_SAMPLE", "SAMPLE_SEED", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	assert.True(t, cfg.SeedSample)
	assert.Zero(t, cfg.SampleSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/w.db")
	t.Setenv("TZ_NAME", "Europe/Rome")
	t.Setenv("SEED_SAMPLE", "false")
	t.Setenv("SAMPLE_SEED", "42")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, BackendSQLite, cfg.DataBackend)
	assert.Equal(t, "/tmp/w.db", cfg.SQLiteDBPath)
	assert.False(t, cfg.SeedSample)
	assert.Equal(t, int64(42), cfg.SampleSeed)
	require.NoError(t, cfg.Validate())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Rome", loc.String())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Addr:        "",
		DataBackend: "redis",
		TimeZone:    "Mars/Olympus",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestValidate_PostgresNeedsURL(t *testing.T) {
	cfg := &Config{Addr: ":8080", DataBackend: BackendPostgres, TimeZone: "UTC"}
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")
}

func TestLoad_SeedDefaultFollowsBackend(t *testing.T) {
	t.Setenv("SEED_SAMPLE", "")

	for backend, want := range map[string]bool{
		BackendMemory:   true,
		BackendSQLite:   false,
		BackendPostgres: false,
	} {
		t.Setenv("DATA_BACKEND", backend)
		assert.Equal(t, want, Load().SeedSample, backend)
	}

	t.Setenv("DATA_BACKEND", BackendSQLite)
	t.Setenv("SEED_SAMPLE", "true")
	assert.True(t, Load().SeedSample)
}

func TestValidate_RejectsInMemorySQLite(t *testing.T) {
	for _, path := range []string{":memory:", "file::memory:?cache=shared", "file:w.db?mode=memory"} {
		cfg := &Config{Addr: ":8080", DataBackend: BackendSQLite, SQLiteDBPath: path, TimeZone: "UTC"}
		assert.ErrorContains(t, cfg.Validate(), "SQLITE_DB_PATH", path)
	}
}
