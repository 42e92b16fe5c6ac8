package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabcheck/pkg/config"
)

type sourceConfig struct {
	Path  string `env:"AUDIT_CSV_PATH,required"`
	Comma string `env:"AUDIT_CSV_COMMA" envDefault:","`
}

func TestLoad(t *testing.T) {
	t.Run("populates struct from environment", func(t *testing.T) {
		t.Setenv("AUDIT_CSV_PATH", "/data/payments.csv")

		var cfg sourceConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/data/payments.csv", cfg.Path)
		assert.Equal(t, ",", cfg.Comma, "default applies when unset")
	})

	t.Run("overrides defaults from environment", func(t *testing.T) {
		t.Setenv("AUDIT_CSV_PATH", "/data/payments.csv")
		t.Setenv("AUDIT_CSV_COMMA", ";")

		var cfg sourceConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ";", cfg.Comma)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg sourceConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		var cfg *sourceConfig
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg sourceConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("passes through on success", func(t *testing.T) {
		t.Setenv("AUDIT_CSV_PATH", "/data/ok.csv")
		assert.NotPanics(t, func() {
			var cfg sourceConfig
			config.MustLoad(&cfg)
		})
	})
}
