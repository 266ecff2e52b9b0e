// Package config contains the configuration of the datastructs binary.
package config

import (
	"errors"
	"fmt"
	"slices"
)

const (
	DefaultLogFormat     = "text"
	DefaultLogLevel      = "info"
	DefaultOutput        = "text"
	DefaultStressWorkers = 8
	DefaultStressValues  = 10000
)

// ErrInvalidConfig is wrapped by every error returned from Verify.
var ErrInvalidConfig = errors.New("invalid config")

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"none", "debug", "info", "warn", "error"}
	outputs    = []string{"text", "json", "yaml"}
)

type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

// StressConfig drives the stress command, which pushes Values integers onto a
// single guarded stack from Workers goroutines.
type StressConfig struct {
	Workers int
	Values  int
}

type Config struct {
	Log LogConfig

	// Output is the format demo results are printed in: 'text', 'json' or 'yaml'.
	Output string

	Stress StressConfig
}

// Verify checks that the configuration is usable.
func (cfg *Config) Verify() error {
	if !slices.Contains(logFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: 'log.format' must be one of %v", ErrInvalidConfig, logFormats)
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: 'log.level' must be one of %v", ErrInvalidConfig, logLevels)
	}

	if !slices.Contains(outputs, cfg.Output) {
		return fmt.Errorf("%w: 'output' must be one of %v", ErrInvalidConfig, outputs)
	}

	if cfg.Stress.Workers < 1 {
		return fmt.Errorf("%w: 'stress.workers' must be at least 1, got %d", ErrInvalidConfig, cfg.Stress.Workers)
	}

	if cfg.Stress.Values < 0 {
		return fmt.Errorf("%w: 'stress.values' cannot be negative, got %d", ErrInvalidConfig, cfg.Stress.Values)
	}

	return nil
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
		Output: DefaultOutput,
		Stress: StressConfig{
			Workers: DefaultStressWorkers,
			Values:  DefaultStressValues,
		},
	}
}
