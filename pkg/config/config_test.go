package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8080/api", cfg.Backend.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.Debounce)
	assert.Equal(t, 10, cfg.UI.PageSize)
	assert.Equal(t, 24*time.Hour, cfg.Cookie.Expiry)
	assert.Equal(t, 30*time.Minute, cfg.Workspace.IdleTimeout)
}

func TestFromViper_OverridesDesdeStrings(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_BASE_URL", "https://api.example.com/v1/")
	v.Set("UI_DEBOUNCE_MS", "250")
	v.Set("UI_PAGE_SIZE", "25")
	v.Set("COOKIE_SECURE", true)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.Backend.BaseURL, "la barra final se recorta")
	assert.Equal(t, 250*time.Millisecond, cfg.UI.Debounce)
	assert.Equal(t, 25, cfg.UI.PageSize)
	assert.True(t, cfg.Cookie.Secure)
}

func TestFromViper_PageSizeFueraDeRango(t *testing.T) {
	v := viper.New()
	v.Set("UI_PAGE_SIZE", 500)

	_, err := config.FromViper(v)
	assert.Error(t, err)
}
