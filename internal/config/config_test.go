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
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "data/blog.db", cfg.SQLitePath)
	assert.Equal(t, "http://localhost:3001/api/posts", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.ToastDuration)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.RetryCount)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BLOG_ADDR", "127.0.0.1:9000")
	t.Setenv("BLOG_STORAGE", "postgres")
	t.Setenv("BLOG_DATABASE_URL", "postgres://blog@localhost/blog")
	t.Setenv("BLOG_REQUEST_TIMEOUT", "5s")
	t.Setenv("BLOG_LOG_SQL", "true")
	t.Setenv("PORT", "8080")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "postgres://blog@localhost/blog", cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.LogSQL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://legacy@localhost/blog")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "postgres://legacy@localhost/blog", cfg.DatabaseURL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: in-memory\naddr: \":4000\"\ntoast_duration: 1s\n"), 0o600))
	t.Setenv("BLOG_ADDR", ":5000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StorageInMemory, cfg.Storage)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, time.Second, cfg.ToastDuration)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"sqlite", Config{Storage: StorageSQLite, SQLitePath: "x.db"}, false},
		{"sqlite without path", Config{Storage: StorageSQLite}, true},
		{"postgres without dsn", Config{Storage: StoragePostgres}, true},
		{"in-memory", Config{Storage: StorageInMemory}, false},
		{"unknown", Config{Storage: "mongo"}, true},
		{"negative timeout", Config{Storage: StorageInMemory, RequestTimeout: -time.Second}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
