package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonavalle/credit-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "credit.db", cfg.DBPath)
	assert.NotEmpty(t, cfg.CORSOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("PORT", "99999")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := config.Config{Port: 8080, DBPath: "x.db", CORSOrigins: []string{"*"}}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.DBPath = ""
	assert.Error(t, bad.Validate())

	bad = ok
	bad.CORSOrigins = nil
	assert.Error(t, bad.Validate())
}
