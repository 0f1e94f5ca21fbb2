package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "fsdb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "fsdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "fsdb", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "fsdb", "config.yaml"),
		},
		{
			msg: "sources file",
			fn:  config.SourcesFilePath,
			res: filepath.Join(tempHome, ".config", "fsdb", "sources.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	// Database defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "postgres", cfg.Database.Password)
	assert.Equal(t, "foodsurveys", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 50_000, cfg.Database.BatchSize)

	// Log defaults
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.HomeDir)
}

func TestStringOptions(t *testing.T) {
	tests := []struct {
		msg   string
		opt   config.Option
		check func(*config.Config) string
		res   string
	}{
		{
			msg:   "host set",
			opt:   config.OptDatabaseHost("db.example.org"),
			check: func(c *config.Config) string { return c.Database.Host },
			res:   "db.example.org",
		},
		{
			msg:   "host trimmed",
			opt:   config.OptDatabaseHost("  db.example.org  "),
			check: func(c *config.Config) string { return c.Database.Host },
			res:   "db.example.org",
		},
		{
			msg:   "empty host rejected",
			opt:   config.OptDatabaseHost(""),
			check: func(c *config.Config) string { return c.Database.Host },
			res:   "localhost",
		},
		{
			msg:   "user set",
			opt:   config.OptDatabaseUser("importer"),
			check: func(c *config.Config) string { return c.Database.User },
			res:   "importer",
		},
		{
			msg:   "database set",
			opt:   config.OptDatabaseDatabase("fndds"),
			check: func(c *config.Config) string { return c.Database.Database },
			res:   "fndds",
		},
		{
			msg:   "home dir set",
			opt:   config.OptHomeDir("/home/user"),
			check: func(c *config.Config) string { return c.HomeDir },
			res:   "/home/user",
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{v.opt})
		assert.Equal(t, v.res, v.check(cfg), v.msg)
	}
}

func TestIntOptions(t *testing.T) {
	tests := []struct {
		msg   string
		opt   config.Option
		check func(*config.Config) int
		res   int
	}{
		{
			msg:   "port set",
			opt:   config.OptDatabasePort(5433),
			check: func(c *config.Config) int { return c.Database.Port },
			res:   5433,
		},
		{
			msg:   "zero port rejected",
			opt:   config.OptDatabasePort(0),
			check: func(c *config.Config) int { return c.Database.Port },
			res:   5432,
		},
		{
			msg:   "batch size set",
			opt:   config.OptDatabaseBatchSize(10_000),
			check: func(c *config.Config) int { return c.Database.BatchSize },
			res:   10_000,
		},
		{
			msg:   "negative batch size rejected",
			opt:   config.OptDatabaseBatchSize(-1),
			check: func(c *config.Config) int { return c.Database.BatchSize },
			res:   50_000,
		},
		{
			msg:   "jobs number set",
			opt:   config.OptJobsNumber(4),
			check: func(c *config.Config) int { return c.JobsNumber },
			res:   4,
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{v.opt})
		assert.Equal(t, v.res, v.check(cfg), v.msg)
	}
}

func TestEnumOptions(t *testing.T) {
	tests := []struct {
		msg   string
		opt   config.Option
		check func(*config.Config) string
		res   string
	}{
		{
			msg:   "ssl mode set",
			opt:   config.OptDatabaseSSLMode("require"),
			check: func(c *config.Config) string { return c.Database.SSLMode },
			res:   "require",
		},
		{
			msg:   "ssl mode case-insensitive",
			opt:   config.OptDatabaseSSLMode("REQUIRE"),
			check: func(c *config.Config) string { return c.Database.SSLMode },
			res:   "require",
		},
		{
			msg:   "bad ssl mode rejected",
			opt:   config.OptDatabaseSSLMode("enabled"),
			check: func(c *config.Config) string { return c.Database.SSLMode },
			res:   "disable",
		},
		{
			msg:   "log level set",
			opt:   config.OptLogLevel("debug"),
			check: func(c *config.Config) string { return c.Log.Level },
			res:   "debug",
		},
		{
			msg:   "bad log level rejected",
			opt:   config.OptLogLevel("verbose"),
			check: func(c *config.Config) string { return c.Log.Level },
			res:   "info",
		},
		{
			msg:   "log format set",
			opt:   config.OptLogFormat("text"),
			check: func(c *config.Config) string { return c.Log.Format },
			res:   "text",
		},
		{
			msg:   "log destination set",
			opt:   config.OptLogDestination("stderr"),
			check: func(c *config.Config) string { return c.Log.Destination },
			res:   "stderr",
		},
		{
			msg:   "bad destination rejected",
			opt:   config.OptLogDestination("syslog"),
			check: func(c *config.Config) string { return c.Log.Destination },
			res:   "file",
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{v.opt})
		assert.Equal(t, v.res, v.check(cfg), v.msg)
	}
}

func TestToOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptDatabasePort(5433),
		config.OptDatabaseBatchSize(1_000),
		config.OptLogLevel("warn"),
		config.OptJobsNumber(2),
		config.OptHomeDir("/home/user"),
	})

	restored := config.New()
	restored.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Database, restored.Database)
	assert.Equal(t, cfg.Log, restored.Log)
	assert.Equal(t, cfg.JobsNumber, restored.JobsNumber)

	// HomeDir is runtime-only; it does not survive the round trip.
	assert.Empty(t, restored.HomeDir)
}
