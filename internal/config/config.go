package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Report ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
	Issuer      string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ReportConfig holds analytics settings. WindowYear selects the calendar
// year the monthly sales series reports on.
type ReportConfig struct {
	WindowYear int `mapstructure:"window_year"`
}

// Load reads configuration from environment variables with the INVENSIGHT_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVENSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "invensight")
	v.SetDefault("db.password", "invensight_secret")
	v.SetDefault("db.name", "invensight_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.token_expiry", "2h")
	v.SetDefault("jwt.issuer", "invensight")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Report defaults
	v.SetDefault("report.window_year", 2025)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "INVENSIGHT_SERVER_PORT",
		"server.read_timeout":  "INVENSIGHT_SERVER_READ_TIMEOUT",
		"server.write_timeout": "INVENSIGHT_SERVER_WRITE_TIMEOUT",
		"server.environment":   "INVENSIGHT_SERVER_ENVIRONMENT",
		"db.host":              "INVENSIGHT_DB_HOST",
		"db.port":              "INVENSIGHT_DB_PORT",
		"db.user":              "INVENSIGHT_DB_USER",
		"db.password":          "INVENSIGHT_DB_PASSWORD",
		"db.name":              "INVENSIGHT_DB_NAME",
		"db.sslmode":           "INVENSIGHT_DB_SSLMODE",
		"db.max_open":          "INVENSIGHT_DB_MAX_OPEN",
		"db.max_idle":          "INVENSIGHT_DB_MAX_IDLE",
		"jwt.secret":           "INVENSIGHT_JWT_SECRET",
		"jwt.token_expiry":     "INVENSIGHT_JWT_TOKEN_EXPIRY",
		"jwt.issuer":           "INVENSIGHT_JWT_ISSUER",
		"log.level":            "INVENSIGHT_LOG_LEVEL",
		"log.format":           "INVENSIGHT_LOG_FORMAT",
		"cors.allowed_origins": "INVENSIGHT_CORS_ALLOWED_ORIGINS",
		"report.window_year":   "INVENSIGHT_REPORT_WINDOW_YEAR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVENSIGHT_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVENSIGHT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:      v.GetString("jwt.secret"),
		TokenExpiry: v.GetDuration("jwt.token_expiry"),
		Issuer:      v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Report = ReportConfig{
		WindowYear: v.GetInt("report.window_year"),
	}

	return cfg, nil
}
