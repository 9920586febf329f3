package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:darasa.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 3000*time.Minute, cfg.TokenTTL)
	assert.Equal(t, CategoryWritesAuthenticated, cfg.CategoryWritePolicy)
	assert.True(t, cfg.EnforceCourseCategory)
}

func TestLoadConfigUsesTestDatabaseURL(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:prod.db")
	t.Setenv("TEST_DATABASE_URL", "file:test.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
}

func TestLoadConfigComposesPostgresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "darasa")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "darasa")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "host=db user=darasa password=secret dbname=darasa port=5432 sslmode=disable", cfg.DatabaseURL)
}

func TestLoadConfigMySQL(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DATABASE_URL", "darasa:secret@tcp(db:3306)/darasa?parseTime=true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "darasa:secret@tcp(db:3306)/darasa?parseTime=true", cfg.DatabaseURL)
}

func TestValidate(t *testing.T) {
	base := Config{
		DBDriver:            DriverSQLite,
		DatabaseURL:         "file:x.db",
		TokenTTL:            time.Hour,
		CategoryWritePolicy: CategoryWritesAdmin,
	}
	require.NoError(t, base.Validate())

	mysqlCfg := base
	mysqlCfg.DBDriver = DriverMySQL
	mysqlCfg.DatabaseURL = "darasa:secret@tcp(localhost:3306)/darasa?parseTime=true"
	assert.NoError(t, mysqlCfg.Validate())

	bad := base
	bad.DBDriver = "oracle"
	assert.Error(t, bad.Validate())

	bad = base
	bad.DatabaseURL = ""
	assert.Error(t, bad.Validate())

	bad = base
	bad.TokenTTL = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.CategoryWritePolicy = "owner"
	assert.Error(t, bad.Validate())
}
