package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveBenchParameters(t *testing.T) {
	rounds, iterations := AdaptiveBenchParameters()

	assert.Greater(t, rounds, 0, "rounds should be positive")
	assert.Greater(t, iterations, 0, "iterations should be positive")
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load("")

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultProfileFile, cfg.ProfileFile)

	expectedRounds, expectedIterations := AdaptiveBenchParameters()
	assert.Equal(t, expectedRounds, cfg.BenchRounds)
	assert.Equal(t, expectedIterations, cfg.BenchIterations)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TP_LOG_LEVEL", "debug")
	t.Setenv("TP_BENCH_ROUNDS", "7")
	t.Setenv("TP_BENCH_ITERATIONS", "1234")
	t.Setenv("TP_PROFILE_FILE", "/tmp/profiles.yaml")

	cfg := Load("")

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7, cfg.BenchRounds)
	assert.Equal(t, 1234, cfg.BenchIterations)
	assert.Equal(t, "/tmp/profiles.yaml", cfg.ProfileFile)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("TP_BENCH_ROUNDS", "not-a-number")

	cfg := Load("")

	expectedRounds, _ := AdaptiveBenchParameters()
	assert.Equal(t, expectedRounds, cfg.BenchRounds)
}

func TestLoadEnvFile(t *testing.T) {
	// Env files must not override variables already set in the environment,
	// which is godotenv's documented behavior.
	dir := t.TempDir()
	file := filepath.Join(dir, "threadctl.env")
	require.NoError(t, os.WriteFile(file, []byte("TP_LOG_LEVEL=error\n"), 0o600))
	// godotenv exports the file into the process environment.
	t.Cleanup(func() { _ = os.Unsetenv("TP_LOG_LEVEL") })

	cfg := Load(file)
	assert.Equal(t, "error", cfg.LogLevel)

	t.Setenv("TP_LOG_LEVEL", "debug")
	cfg = Load(file)
	assert.Equal(t, "debug", cfg.LogLevel)
}
