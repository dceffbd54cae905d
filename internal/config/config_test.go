package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "settings.yml"), []byte(body), 0o600)
	require.NoError(t, err)
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	require.Equal(t, "from-env", cfg.JWT.Secret)
	require.Equal(t, "HS256", cfg.JWT.Algorithm)
	require.Equal(t, 30, cfg.JWT.AccessTokenExpireMinutes)
	require.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL())
	require.Equal(t, 1000, cfg.Cache.Capacity)
	require.Equal(t, StorageDriverS3, cfg.Storage.Driver)
	require.True(t, cfg.DB.RunMigrations)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := writeSettings(t, `
db:
  source: postgres://file
jwt:
  secret: file-secret
  access_token_expire_minutes: 5
cache:
  capacity: 10
storage:
  driver: local
  path: /tmp/blobs
`)
	t.Setenv("DB_SOURCE", "postgres://env")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	require.Equal(t, "postgres://env", cfg.DB.Source)
	require.Equal(t, "file-secret", cfg.JWT.Secret)
	require.Equal(t, 5*time.Minute, cfg.JWT.AccessTokenTTL())
	require.Equal(t, 10, cfg.Cache.Capacity)
	require.Equal(t, StorageDriverLocal, cfg.Storage.Driver)
	require.Equal(t, "/tmp/blobs", cfg.Storage.Path)
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := load(viper.New(), t.TempDir())
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			JWT:     JWTConfig{Secret: "s", AccessTokenExpireMinutes: 1},
			Storage: StorageConfig{Driver: StorageDriverMinio, Bucket: "files"},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.JWT.AccessTokenExpireMinutes = 0
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Storage.Driver = "ftp"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Storage.Bucket = ""
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Storage = StorageConfig{Driver: StorageDriverLocal}
	require.Error(t, cfg.Validate())
}
