package pew

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults for RunConfig.
const (
	DefaultMinDuration = time.Second
	DefaultMinRuns     = 8
)

// RunConfig controls one benchmark invocation. It is read-only for the
// runner's lifetime.
type RunConfig struct {
	// Filter skips benchmarks whose qualified name does not contain it as a
	// substring. Empty means run everything.
	Filter string
	// MinDuration is the minimum total active time per (entry, body, size).
	MinDuration time.Duration
	// MinRuns is the minimum run count per (entry, body, size). Both
	// MinDuration and MinRuns must be satisfied before a benchmark stops.
	MinRuns uint64
}

// DefaultConfig returns the default run configuration: no filter, one second
// minimum duration, eight minimum runs.
func DefaultConfig() RunConfig {
	return RunConfig{
		MinDuration: DefaultMinDuration,
		MinRuns:     DefaultMinRuns,
	}
}

// LoadConfig builds a RunConfig from command-line arguments and the
// environment. Flags win over PEW_-prefixed environment variables, which win
// over defaults. A .env file in the working directory is honored if present.
func LoadConfig(args []string) (RunConfig, error) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	fs := pflag.NewFlagSet("pew", pflag.ContinueOnError)
	fs.StringP("filter", "f", "", "Only run benchmarks that contain this string")
	fs.Uint64P("min-duration", "d", 1, "Run benchmarks for at least this long (in s) and then output the mean")
	fs.Uint64P("min-runs", "r", DefaultMinRuns, "Run benchmarks at least this many times")
	if err := fs.Parse(args); err != nil {
		return RunConfig{}, fmt.Errorf("failed to parse benchmark flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PEW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("filter", "")
	v.SetDefault("min-duration", 1)
	v.SetDefault("min-runs", DefaultMinRuns)

	for _, name := range []string{"filter", "min-duration", "min-runs"} {
		if flag := fs.Lookup(name); flag != nil && flag.Changed {
			if err := v.BindPFlag(name, flag); err != nil {
				return RunConfig{}, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	cfg := RunConfig{
		Filter:      v.GetString("filter"),
		MinDuration: time.Duration(v.GetUint64("min-duration")) * time.Second,
		MinRuns:     v.GetUint64("min-runs"),
	}
	if cfg.MinRuns < 1 {
		return RunConfig{}, fmt.Errorf("min-runs must be at least 1, got %d", cfg.MinRuns)
	}
	return cfg, nil
}
