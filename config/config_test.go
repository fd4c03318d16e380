package config

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"testing"

	"food-order/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_SOURCE", "COOKIE_SECURE", "MEDIA_DIR", "SESSION_KEY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "food_order.db", cfg.DBSource)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "media", cfg.MediaDir)
	assert.Len(t, cfg.SessionKey, 32)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	key := bytes.Repeat([]byte("s"), 32)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString(key))

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, key, cfg.SessionKey)
}

func TestKeyFromEnvRejectsShortKeys(t *testing.T) {
	short := base64.StdEncoding.EncodeToString([]byte("short"))
	t.Setenv("CSRF_KEY", short)
	got := keyFromEnv("CSRF_KEY")
	assert.Len(t, got, 32)
	assert.NotEqual(t, []byte("short"), got)
}

func TestOpenDBUnknownDriver(t *testing.T) {
	_, err := OpenDB("oracle", "x")
	assert.Error(t, err)
}

func TestMigrateSQLite(t *testing.T) {
	db, err := OpenDB("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	for _, m := range []any{&models.User{}, &models.Restaurant{}, &models.Category{}, &models.FoodItem{}, &models.Order{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestGormLogsThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	db, err := OpenDB("sqlite", filepath.Join(t.TempDir(), "l.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	var u models.User
	err = db.First(&u, 42).Error
	require.Error(t, err)
	assert.Empty(t, buf.String(), "missing rows are not logged")

	err = db.Exec("SELECT * FROM no_such_table").Error
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "no_such_table")
}
