package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/fortiz")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Auth.Jwt.Expiry)
	assert.False(t, cfg.Transfer.Atomic)
	assert.Equal(t, "1000", cfg.Transfer.MfaThreshold.String())
	assert.Equal(t, "memory", cfg.EventBus.Driver)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.CacheTTL)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("TRANSFER_ATOMIC", "true")
	t.Setenv("TRANSFER_MFA_THRESHOLD", "250.50")
	t.Setenv("EVENT_BUS_DRIVER", "kafka")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.Transfer.Atomic)
	assert.Equal(t, "250.5", cfg.Transfer.MfaThreshold.String())
	assert.Equal(t, "kafka", cfg.EventBus.Driver)
}

func TestLoadFromEnv_RequiresJwtSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	_ = os.Unsetenv("AUTH_JWT_SECRET")

	_, err := loadFromEnv()
	assert.Error(t, err)
}

func TestLocateEnvFile_WalksUp(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := locateEnvFile(".env.test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.test"), found)

	_, err = locateEnvFile(".env.missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocateEnvFile_AbsoluteAndDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(file, []byte("X=1\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o755))
	t.Chdir(dir)

	found, err := locateEnvFile(file)
	require.NoError(t, err)
	assert.Equal(t, file, found)

	_, err = locateEnvFile(filepath.Join(dir, "absent.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = locateEnvFile(".env")
	assert.Error(t, err, "a directory named .env is not an env file")
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"),
		[]byte("AUTH_JWT_SECRET=from-file\nTRANSFER_MFA_THRESHOLD=500\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("AUTH_JWT_SECRET", "")
	_ = os.Unsetenv("AUTH_JWT_SECRET")
	t.Setenv("TRANSFER_MFA_THRESHOLD", "")
	_ = os.Unsetenv("TRANSFER_MFA_THRESHOLD")

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Auth.Jwt.Secret)
	assert.Equal(t, "500", cfg.Transfer.MfaThreshold.String())
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "sk****cdef", maskValue("sk_live_abcdef"))
}
