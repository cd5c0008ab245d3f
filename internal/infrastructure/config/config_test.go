package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "billing-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestApplyDefaults_Production(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}}
	applyDefaults(cfg)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	t.Run("accepts defaults", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		assert.NoError(t, cfg.validate())
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		cfg := &Config{App: AppConfig{Env: "testing"}}
		applyDefaults(cfg)
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects invalid log level", func(t *testing.T) {
		cfg := &Config{Log: LogConfig{Level: "verbose"}}
		applyDefaults(cfg)
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{MaxOpenConns: 5, MaxIdleConns: 10}}
		applyDefaults(cfg)
		assert.Error(t, cfg.validate())
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "billing",
		Password: "p@ss/word",
		DBName:   "billing",
		SSLMode:  "require",
	}

	dsn := d.DSN()

	require.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// password must be escaped, not raw
	assert.NotContains(t, dsn, "p@ss/word")
}
