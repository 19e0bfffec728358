package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "STORAGE", "TOKEN_SECRET", "TOKEN_TTL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Storage)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, devTokenSecret, cfg.TokenSecret)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("TOKEN_SECRET", "")

	cfg := Load()

	assert.Empty(t, cfg.TokenSecret)
	assert.Error(t, cfg.Validate())
	assert.True(t, cfg.IsProd())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("STORAGE", "memory")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("AUTH_RATE_BURST", "3")
	t.Setenv("AUTH_RATE_LIMIT", "0.5")

	cfg := Load()

	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.AuthRateBurst)
	assert.InDelta(t, 0.5, cfg.AuthRateLimit, 0.0001)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Storage:     "memory",
		TokenSecret: devTokenSecret,
		TokenTTL:    time.Hour,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "short secret", mutate: func(c *Config) { c.TokenSecret = "short" }, wantErr: true},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage = "mongo" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.Storage = "postgres" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: "http://a.test, http://b.test,,"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}

func TestSetupLogFile_KeepsMostRecent(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"linkvault-2001.log", "linkvault-2002.log", "linkvault-2003.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	f, err := SetupLogFile(dir, 2)
	require.NoError(t, err)
	defer f.Close()

	files, err := filepath.Glob(filepath.Join(dir, "linkvault-*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Contains(t, files, f.Name())
}
