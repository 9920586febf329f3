package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	// CategoryWritesAuthenticated lets any signed-in user manage categories.
	CategoryWritesAuthenticated = "authenticated"
	// CategoryWritesAdmin restricts category create/update/delete to ADMIN users.
	CategoryWritesAdmin = "admin"

	defaultJWTKey = "test-key"
)

// Config holds application configuration. It is built once by LoadConfig
// and passed by pointer to whatever needs it; nothing mutates it afterwards.
type Config struct {
	Port        string
	Env         string
	DBDriver    string
	DatabaseURL string

	JWTKey    string
	TokenTTL  time.Duration
	SaltRound int

	APIPrefix   string
	LogLevel    string
	CORSOrigins string

	// EnforceCourseCategory makes course create/update look the category up
	// before writing. When off, an unknown category surfaces from the
	// foreign key instead.
	EnforceCourseCategory bool
	CategoryWritePolicy   string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		Env:       getEnv("ENV", "app"),
		DBDriver:  strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		JWTKey:    getEnv("SECRET_KEY", defaultJWTKey),
		TokenTTL:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 3000)) * time.Minute,
		SaltRound: getEnvInt("SALT_ROUND", 10),

		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		EnforceCourseCategory: getEnvBool("ENFORCE_COURSE_CATEGORY", true),
		CategoryWritePolicy:   strings.ToLower(getEnv("CATEGORY_WRITE_POLICY", CategoryWritesAuthenticated)),
	}

	if cfg.Env == "test" {
		cfg.DatabaseURL = os.Getenv("TEST_DATABASE_URL")
	} else {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DBDriver == DriverPostgres {
		cfg.DatabaseURL = postgresDSN()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.JWTKey == defaultJWTKey {
		logrus.Warn("Warning: Using default SECRET_KEY. Update it in your environment.")
	}
	return cfg, nil
}

// Validate reports the first setting that would keep the server from working.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config: database url is empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	switch c.CategoryWritePolicy {
	case CategoryWritesAuthenticated, CategoryWritesAdmin:
	default:
		return fmt.Errorf("config: unsupported CATEGORY_WRITE_POLICY %q", c.CategoryWritePolicy)
	}
	return nil
}

func postgresDSN() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host,
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("Error converting environment variable to int: %v", err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("Error converting environment variable to bool: %v", err)
		return defaultValue
	}
	return b
}
