package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SOURCE", "")
	t.Setenv("SHEET_PATH", "")
	t.Setenv("SHEET_NAME", "")
	t.Setenv("BIRTH_DATE", "")
	t.Setenv("DB_PORT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "excel", cfg.Source)
	assert.Equal(t, "lifelist.xlsx", cfg.SheetPath)
	assert.Equal(t, "Sheet1", cfg.SheetName)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, time.Date(1979, 9, 2, 0, 0, 0, 0, time.UTC), cfg.BirthDate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SOURCE", "postgres")
	t.Setenv("SHEET_TABLE", "bucket_list")
	t.Setenv("BIRTH_DATE", "1990-01-31")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "lifelist")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Source)
	assert.Equal(t, "bucket_list", cfg.SheetTable)
	assert.Equal(t, time.Date(1990, 1, 31, 0, 0, 0, 0, time.UTC), cfg.BirthDate)
	assert.Equal(t, "host=db port=6543 user=app password=pw dbname=lifelist sslmode=disable", cfg.ConnString())
}

func TestLoadUnknownSourceFallsBack(t *testing.T) {
	t.Setenv("SOURCE", "gsheets")

	cfg := Load()
	assert.Equal(t, "excel", cfg.Source)
}
