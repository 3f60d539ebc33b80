package logger

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mordilloSan/go-console-logger/platform"
)

// ErrInvalidEnvironment is returned by LoadEnv when a LOGGER_* variable holds an unknown value.
// It is the same sentinel as platform.ErrInvalidEnvironment.
var ErrInvalidEnvironment = platform.ErrInvalidEnvironment

// EnvConfig holds the LOGGER_* environment variables honoured by the package default logger.
type EnvConfig struct {
	// Level is the initial minimum level name.
	Level string `env:"LOGGER_LEVEL"`
	// Timestamp enables the [M/D/YYYY HH:MM:SS] prefix.
	Timestamp bool `env:"LOGGER_TIMESTAMP" envDefault:"false"`
	// Encoding selects the Object serialization: json or yaml.
	Encoding string `env:"LOGGER_ENCODING" envDefault:"json"`
}

// LoadEnv reads the LOGGER_* variables from the process environment.
func LoadEnv() (EnvConfig, error) {
	return parseEnv(env.Options{})
}

func parseEnv(opts env.Options) (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidEnvironment, err.Error())
	}

	var invalid []string
	if _, ok := ParseLevel(cfg.Level); cfg.Level != "" && !ok {
		invalid = append(invalid, "LOGGER_LEVEL must be one of trace, debug, info, warn, error")
	}
	if _, ok := EncoderByName(cfg.Encoding); !ok {
		invalid = append(invalid, "LOGGER_ENCODING must be one of json, yaml")
	}
	if len(invalid) > 0 {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidEnvironment, strings.Join(invalid, ", "))
	}
	return cfg, nil
}

// Apply copies the environment settings into config.
// Unknown values are skipped so a bad variable never disables logging.
func (e EnvConfig) Apply(config Config) Config {
	if _, ok := ParseLevel(e.Level); ok {
		config.Level = e.Level
	}
	if e.Timestamp {
		config.Timestamp = true
	}
	if enc, ok := EncoderByName(e.Encoding); ok && config.Encoder == nil {
		config.Encoder = enc
	}
	return config
}
