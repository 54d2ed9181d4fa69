package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pion/logging"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/units"
)

// Config holds the runtime settings of the command, loaded from environment
// variables.
type Config struct {
	SampleRate float64
	BlockSize  int
	LogLevel   string
	BendRange  float64 // semitones at full bend
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	def := core.DefaultProcessorConfig()
	return Config{
		SampleRate: envFloat("SYNTH_SAMPLE_RATE", def.SampleRate),
		BlockSize:  envInt("SYNTH_BLOCK_SIZE", def.BlockSize),
		LogLevel:   envStr("SYNTH_LOG_LEVEL", "info"),
		BendRange:  envFloat("SYNTH_BEND_RANGE", 2),
	}
}

// Processor returns the render settings with c applied over the defaults.
func (c Config) Processor() core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(c.SampleRate),
		core.WithBlockSize(c.BlockSize),
	)
}

// Rate validates the configured sample rate.
func (c Config) Rate() (units.SampleRate, error) {
	sr, err := units.NewSampleRate(c.SampleRate)
	if err != nil {
		return units.SampleRate{}, fmt.Errorf("config: SYNTH_SAMPLE_RATE: %w", err)
	}
	return sr, nil
}

// LoggerFactory returns a factory logging at the configured level.
func (c Config) LoggerFactory() (*logging.DefaultLoggerFactory, error) {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	f := logging.NewDefaultLoggerFactory()
	f.DefaultLogLevel = level
	return f, nil
}

// ParseLogLevel maps a level name onto a pion log level.
func ParseLogLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disable", "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info", "":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("config: unknown log level %q", s)
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
