package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	HTTPPort  int    `env:"SAMPLE_HTTP_PORT" envDefault:"8080"`
	RedisAddr string `env:"SAMPLE_REDIS_ADDR" envDefault:"localhost:6379"`
	LogLevel  string `env:"SAMPLE_LOG_LEVEL" envDefault:"info"`
	Verbose   bool   `env:"SAMPLE_VERBOSE" envDefault:"false"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg sampleConfig
	err := Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SAMPLE_HTTP_PORT", "9000")
	t.Setenv("SAMPLE_REDIS_ADDR", "redis:6380")
	t.Setenv("SAMPLE_LOG_LEVEL", "debug")
	t.Setenv("SAMPLE_VERBOSE", "true")

	var cfg sampleConfig
	err := Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

type strictConfig struct {
	Token string `env:"SAMPLE_TOKEN,required"`
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg strictConfig
	err := Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("SAMPLE_HTTP_PORT", "eighty-eighty")

	var cfg sampleConfig
	err := Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
