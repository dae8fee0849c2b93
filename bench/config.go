package bench

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configuration keys, also used as flag names.
const (
	KeyInput          = "input"
	KeyGenerateFields = "generate-fields"
	KeyIterations     = "iterations"
	KeyRounds         = "rounds"
	KeyWarmup         = "warmup"
	KeyWorkers        = "workers"
	KeyStrategies     = "strategies"
)

// Defaults.
const (
	DefaultIterations     = 1000
	DefaultGenerateFields = 35650 // About the size of the reference corpus.
	DefaultWorkers        = 1
)

// DefaultStrategies are run when none are selected.
var DefaultStrategies = []string{"key", "cow"}

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config configures a benchmark run.
type Config struct {
	Input          string   `mapstructure:"input"`           // Corpus file, a corpus is generated when empty.
	GenerateFields int      `mapstructure:"generate-fields"` // Unknown members of a generated corpus.
	Iterations     int      `mapstructure:"iterations"`      // Decodes per strategy per round.
	Rounds         int      `mapstructure:"rounds"`          // 0 runs until cancelled.
	Warmup         int      `mapstructure:"warmup"`          // Untimed decodes per strategy before the first round.
	Workers        int      `mapstructure:"workers"`         // Goroutines sharing the iterations of a batch.
	Strategies     []string `mapstructure:"strategies"`      // Strategy names, in run order.
}

// SetDefaults registers the default configuration values in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyGenerateFields, DefaultGenerateFields)
	v.SetDefault(KeyIterations, DefaultIterations)
	v.SetDefault(KeyRounds, 0)
	v.SetDefault(KeyWarmup, 0)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyStrategies, DefaultStrategies)
}

// LoadConfig reads the configuration from v and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	switch {
	case c.Iterations <= 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %d", KeyIterations, c.Iterations)
	case c.Rounds < 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must not be negative, got %d", KeyRounds, c.Rounds)
	case c.Warmup < 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must not be negative, got %d", KeyWarmup, c.Warmup)
	case c.Workers <= 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %d", KeyWorkers, c.Workers)
	case c.Input == "" && c.GenerateFields < 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must not be negative, got %d", KeyGenerateFields, c.GenerateFields)
	case len(c.Strategies) == 0:
		return errors.Wrapf(ErrInvalidConfig, "no %s selected", KeyStrategies)
	}

	return nil
}
