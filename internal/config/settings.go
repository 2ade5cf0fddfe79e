package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "EXITSIM"

// Settings holds application level settings that are not model parameters.
type Settings struct {
	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
	// LogFile, when set, also writes JSON logs to a rotating file.
	LogFile string `mapstructure:"log_file"`
	// Development switches the logger to the development encoder.
	Development bool `mapstructure:"development"`
	// Workers bounds the number of concurrently simulated chunks.
	Workers int `mapstructure:"workers"`
	// Seed fixes the random seed; 0 picks one per run.
	Seed int64 `mapstructure:"seed"`
	// Sharpness is the PERT concentration parameter.
	Sharpness float64 `mapstructure:"sharpness"`
	// OutputDir is where report files are written.
	OutputDir string `mapstructure:"output_dir"`
	// HistogramBins is the number of histogram bins in reports.
	HistogramBins int `mapstructure:"histogram_bins"`
	// Server holds HTTP API settings.
	Server ServerSettings `mapstructure:"server"`
}

// ServerSettings defines the HTTP server settings.
type ServerSettings struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("development", false)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("seed", 0)
	v.SetDefault("sharpness", 4.0)
	v.SetDefault("output_dir", ".")
	v.SetDefault("histogram_bins", 50)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
}

// LoadSettings reads settings from an optional file (empty path skips it)
// and applies EXITSIM_* environment overrides, e.g. EXITSIM_SERVER_PORT.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks settings ranges.
func (s *Settings) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if s.Sharpness < 0 {
		return fmt.Errorf("sharpness cannot be negative, got %g", s.Sharpness)
	}
	if s.HistogramBins < 1 {
		return fmt.Errorf("histogram_bins must be at least 1, got %d", s.HistogramBins)
	}
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Server.Port)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", s.LogLevel)
	}
	return nil
}
