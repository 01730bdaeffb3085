package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.InDelta(t, 0.4, cfg.Temperature, 1e-9)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"Ankit", "Medha"}, cfg.Users)
	assert.Equal(t, StoreBackendFile, cfg.StoreBackend)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TEMPERATURE", "0.9")
	t.Setenv("USERS", "alice, bob ,")
	t.Setenv("STORE_BACKEND", "redis")

	cfg := Load()

	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.InDelta(t, 0.9, cfg.Temperature, 1e-9)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Users)
	assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
}

func TestValidate(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.OpenAIAPIKey = ""
	var cfgErr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, "OPENAI_API_KEY", cfgErr.Field)

	cfg = Load()
	cfg.Temperature = 2.5
	require.Error(t, cfg.Validate())

	cfg = Load()
	cfg.StoreBackend = "dynamo"
	require.Error(t, cfg.Validate())

	cfg = Load()
	cfg.StoreBackend = StoreBackendFirestore
	require.Error(t, cfg.Validate(), "firestore backend needs a project id")
	cfg.ProjectID = "demo"
	require.NoError(t, cfg.Validate())
}
