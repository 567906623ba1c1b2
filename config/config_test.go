package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen: "127.0.0.1:9090"
secret_key: "token-secret"
session_key: "session-secret"
database:
  path: "/tmp/test.db"
openai:
  api_key: "sk-test"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Listen)
	assert.Equal(t, "token-secret", cfg.SecretKey)
	assert.Equal(t, "session-secret", cfg.SessionKey)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)

	// defaults
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 86400, cfg.SessionMaxAge)
	assert.Equal(t, "./client/static", cfg.StaticDir)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
secret_key: "token-secret"
session_key: "session-secret"
database:
  path: "/tmp/test.db"
openai:
  api_key: "sk-test"
`)

	t.Setenv("GENVAULT_LISTEN", "0.0.0.0:1234")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:1234", cfg.Listen)
}

func TestLoad_MissingSecrets(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{
			name: "missing secret key",
			config: `
session_key: "session-secret"
database:
  path: "/tmp/test.db"
openai:
  api_key: "sk-test"
`,
		},
		{
			name: "missing session key",
			config: `
secret_key: "token-secret"
database:
  path: "/tmp/test.db"
openai:
  api_key: "sk-test"
`,
		},
		{
			name: "missing openai api key",
			config: `
secret_key: "token-secret"
session_key: "session-secret"
database:
  path: "/tmp/test.db"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.config))
			assert.Error(t, err)
		})
	}
}
