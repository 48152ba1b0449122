package config_test

import (
	"testing"

	"furniture-store/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	assert.NoError(t, err)

	assert.Equal(t, "hatil", cfg.Store.Variant)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("STORE_VARIANT", "otobi")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(".")
	assert.NoError(t, err)

	assert.Equal(t, "otobi", cfg.Store.Variant)
	assert.Equal(t, "debug", cfg.Log.Level)
}
