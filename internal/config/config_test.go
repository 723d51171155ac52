package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromJSONBlob(t *testing.T) {
	blob := `{
		"port": "9000",
		"default_amount": 9900,
		"gateway": {"key_id": "k", "key_secret": "s", "currency": "USD"}
	}`

	cfg, err := load("", blob)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, int64(9900), cfg.DefaultAmount)
	assert.Equal(t, "k", cfg.Gateway.KeyID)
	assert.Equal(t, "s", cfg.Gateway.KeySecret)
	assert.Equal(t, "USD", cfg.Gateway.Currency)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"gateway": {"key_id": "file-key", "key_secret": "file-secret"},
		"mysql": {"user": "u", "password": "p", "host": "h", "database": "d"}
	}`), 0o600))

	cfg, err := load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Gateway.KeyID)
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", cfg.MySQL.DSN())
}

func TestLoad_EnvOverridesBlob(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_KEY_SECRET", "env-secret")
	t.Setenv("PAYMENT_PORT", "7000")

	cfg, err := load("", `{"gateway": {"key_id": "k", "key_secret": "blob-secret"}}`)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Gateway.KeySecret)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", `{"gateway": {"key_id": "k", "key_secret": "s"}}`)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(24900), cfg.DefaultAmount)
	assert.Equal(t, "INR", cfg.Gateway.Currency)
}

func TestLoad_MissingCredentials(t *testing.T) {
	_, err := load("", `{"gateway": {"key_id": "k"}}`)
	assert.Error(t, err)
}
