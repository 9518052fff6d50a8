package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "siaklake", cfg.Database.DBName)
	assert.Equal(t, "release", cfg.Dashboard.Mode)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, 15, cfg.Generator.Faculties)
	assert.Equal(t, 8, cfg.Generator.Semesters)
	assert.Equal(t, 2018, cfg.Generator.StartYear)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  dbname: campus
generator:
  faculties: 3
  programs: 6
  lecturers: 10
  students: 100
  rooms: 5
  courses: 20
  semesters: 2
  start_year: 2020
  end_year: 2022
export:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "campus", cfg.Database.DBName)
	assert.Equal(t, 3, cfg.Generator.Faculties)
	assert.Equal(t, "json", cfg.Export.Format)
	// Untouched fields keep their defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("EXPORT_FORMAT", "json")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad export format": `
export:
  format: parquet
`,
		"bad dashboard mode": `
dashboard:
  mode: verbose
`,
		"end year before start year": `
generator:
  start_year: 2022
  end_year: 2020
`,
		"bad lifetime": `
database:
  conn_max_lifetime: soon
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.User = "siak"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "warehouse"

	assert.Equal(t,
		"postgres://siak:secret@db:5433/warehouse?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
