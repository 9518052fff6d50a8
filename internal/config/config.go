package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config structure represents the pipeline configuration
type Config struct {
	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME" validate:"required"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" validate:"min=0"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" validate:"min=1"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Minio struct {
		Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
		AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
		Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" validate:"required"`
		UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
	} `yaml:"minio"`

	Dashboard struct {
		Port      string `yaml:"port" env:"DASHBOARD_PORT"`
		Mode      string `yaml:"mode" env:"DASHBOARD_MODE" validate:"oneof=debug release test"`
		JWTSecret string `yaml:"jwt_secret" env:"DASHBOARD_JWT_SECRET"`
	} `yaml:"dashboard"`

	Generator struct {
		Faculties      int `yaml:"faculties" validate:"min=1"`
		Programs       int `yaml:"programs" validate:"min=1"`
		Lecturers      int `yaml:"lecturers" validate:"min=1"`
		Students       int `yaml:"students" validate:"min=1"`
		Rooms          int `yaml:"rooms" validate:"min=1"`
		Courses        int `yaml:"courses" validate:"min=1"`
		Semesters      int `yaml:"semesters" validate:"min=1"`
		ClassSchedules int `yaml:"class_schedules" validate:"min=0"`
		Registrations  int `yaml:"registrations" validate:"min=0"`
		Attendance     int `yaml:"attendance" validate:"min=0"`
		StartYear      int `yaml:"start_year" validate:"min=1900"`
		EndYear        int `yaml:"end_year" validate:"min=1900,gtefield=StartYear"`
	} `yaml:"generator"`

	Export struct {
		Format    string `yaml:"format" env:"EXPORT_FORMAT" validate:"oneof=csv json"`
		OutputDir string `yaml:"output_dir" env:"EXPORT_OUTPUT_DIR"`
	} `yaml:"export"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration. Generator
// counts default to the full published dataset volumes.
func setDefaults(config *Config) {
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "siaklake"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Minio.Endpoint = "localhost:9000"
	config.Minio.Bucket = "lakehouse"

	config.Dashboard.Port = "8080"
	config.Dashboard.Mode = "release"

	config.Generator.Faculties = 15
	config.Generator.Programs = 65
	config.Generator.Lecturers = 1000
	config.Generator.Students = 45000
	config.Generator.Rooms = 350
	config.Generator.Courses = 2500
	config.Generator.Semesters = 8
	config.Generator.ClassSchedules = 5000
	config.Generator.Registrations = 200000
	config.Generator.StartYear = 2018
	config.Generator.EndYear = 2023

	config.Export.Format = "csv"
	config.Export.OutputDir = "data/generated"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides string and numeric fields from the environment.
func loadFromEnv(config *Config) {
	overrideString := func(target *string, key string) {
		if value, exists := os.LookupEnv(key); exists {
			*target = value
		}
	}
	overrideInt := func(target *int, key string) {
		if value, exists := os.LookupEnv(key); exists {
			if parsed, err := strconv.Atoi(value); err == nil {
				*target = parsed
			}
		}
	}
	overrideBool := func(target *bool, key string) {
		if value, exists := os.LookupEnv(key); exists {
			if parsed, err := strconv.ParseBool(value); err == nil {
				*target = parsed
			}
		}
	}

	overrideString(&config.Database.Host, "DB_HOST")
	overrideString(&config.Database.Port, "DB_PORT")
	overrideString(&config.Database.User, "DB_USER")
	overrideString(&config.Database.Password, "DB_PASSWORD")
	overrideString(&config.Database.DBName, "DB_NAME")
	overrideString(&config.Database.SSLMode, "DB_SSLMODE")
	overrideInt(&config.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS")
	overrideInt(&config.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS")
	overrideString(&config.Database.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME")

	overrideString(&config.Minio.Endpoint, "MINIO_ENDPOINT")
	overrideString(&config.Minio.AccessKey, "MINIO_ACCESS_KEY")
	overrideString(&config.Minio.SecretKey, "MINIO_SECRET_KEY")
	overrideString(&config.Minio.Bucket, "MINIO_BUCKET")
	overrideBool(&config.Minio.UseSSL, "MINIO_USE_SSL")

	overrideString(&config.Dashboard.Port, "DASHBOARD_PORT")
	overrideString(&config.Dashboard.Mode, "DASHBOARD_MODE")
	overrideString(&config.Dashboard.JWTSecret, "DASHBOARD_JWT_SECRET")

	overrideString(&config.Export.Format, "EXPORT_FORMAT")
	overrideString(&config.Export.OutputDir, "EXPORT_OUTPUT_DIR")

	overrideString(&config.Logging.Level, "LOG_LEVEL")
	overrideString(&config.Logging.Format, "LOG_FORMAT")
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime format: %w", err)
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
