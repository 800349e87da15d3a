package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// ConstantConfigFilename is the default env file read at startup.
	ConstantConfigFilename = "/etc/default/threadctl"

	DefaultLogLevel    = "info"
	DefaultProfileFile = "/etc/threadctl/profiles.yaml"
)

// AdaptiveBenchParameters calculates benchmark parameters based on CPU
// count. The wakeup measurement runs a single thread pair, but busy large
// machines add scheduler noise faster than extra iterations remove it, so
// bigger systems get shorter runs. Returns (rounds, iterations).
func AdaptiveBenchParameters() (int, int) {
	cpuCount := runtime.NumCPU()

	limits := []struct {
		cores      int
		rounds     int
		iterations int
	}{
		{16, 5, 50_000},
		{64, 5, 20_000},
	}
	for _, l := range limits {
		if cpuCount <= l.cores {
			return l.rounds, l.iterations
		}
	}
	return 3, 10_000
}

type Config struct {
	LogLevel        string
	ProfileFile     string
	BenchRounds     int
	BenchIterations int
}

// Load reads the env file (missing files are ignored) and resolves the
// configuration from environment variables with adaptive defaults.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	defaultRounds, defaultIterations := AdaptiveBenchParameters()

	return &Config{
		LogLevel:        getEnv("TP_LOG_LEVEL", DefaultLogLevel),
		ProfileFile:     getEnv("TP_PROFILE_FILE", DefaultProfileFile),
		BenchRounds:     getEnvInt("TP_BENCH_ROUNDS", defaultRounds),
		BenchIterations: getEnvInt("TP_BENCH_ITERATIONS", defaultIterations),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
