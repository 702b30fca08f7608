package interpolator

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config declares the environment variables backing the process-wide flag
// defaults. Per-call Option overrides still take precedence over whatever
// the environment sets.
type Config struct {
	Raises           bool `env:"INFLECTOR_RAISES" envDefault:"false"`
	UnknownDefaults  bool `env:"INFLECTOR_UNKNOWN_DEFAULTS" envDefault:"true"`
	ExcludedDefaults bool `env:"INFLECTOR_EXCLUDED_DEFAULTS" envDefault:"false"`
	AliasedPatterns  bool `env:"INFLECTOR_ALIASED_PATTERNS" envDefault:"false"`
}

// Options converts the parsed configuration into Options.
func (c Config) Options() Options {
	return Options{
		Raises:           c.Raises,
		UnknownDefaults:  c.UnknownDefaults,
		ExcludedDefaults: c.ExcludedDefaults,
		AliasedPatterns:  c.AliasedPatterns,
	}
}

// LoadConfig reads the flag defaults from the environment, loading a .env
// file first when one is present. A missing .env file is not an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse interpolator config: %w", err)
	}
	return cfg, nil
}
