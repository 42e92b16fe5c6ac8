package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates a configuration struct from environment variables based on
// `env` field tags. The default .env file is loaded once per process first;
// a missing .env file is not an error.
//
// Example:
//
//	type SourceConfig struct {
//	    Path  string `env:"AUDIT_CSV_PATH,required"`
//	    Comma string `env:"AUDIT_CSV_COMMA" envDefault:","`
//	}
//
//	var cfg SourceConfig
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations an audit cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
