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
	Upload UploadConfig
	Log    LogConfig
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

// UploadConfig holds upload staging settings. Staged files are transient:
// they are removed after a successful ingestion.
type UploadConfig struct {
	Dir           string `mapstructure:"dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload size limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SHIPRECON_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHIPRECON")
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
	v.SetDefault("db.user", "shiprecon")
	v.SetDefault("db.password", "shiprecon_secret")
	v.SetDefault("db.name", "shiprecon_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.token_expiry", "12h")
	v.SetDefault("jwt.issuer", "shiprecon")

	// Upload defaults
	v.SetDefault("upload.dir", os.TempDir())
	v.SetDefault("upload.max_file_size_mb", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "SHIPRECON_SERVER_PORT",
		"server.read_timeout":     "SHIPRECON_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "SHIPRECON_SERVER_WRITE_TIMEOUT",
		"server.environment":      "SHIPRECON_SERVER_ENVIRONMENT",
		"db.host":                 "SHIPRECON_DB_HOST",
		"db.port":                 "SHIPRECON_DB_PORT",
		"db.user":                 "SHIPRECON_DB_USER",
		"db.password":             "SHIPRECON_DB_PASSWORD",
		"db.name":                 "SHIPRECON_DB_NAME",
		"db.sslmode":              "SHIPRECON_DB_SSLMODE",
		"db.max_open":             "SHIPRECON_DB_MAX_OPEN",
		"db.max_idle":             "SHIPRECON_DB_MAX_IDLE",
		"jwt.secret":              "SHIPRECON_JWT_SECRET",
		"jwt.token_expiry":        "SHIPRECON_JWT_TOKEN_EXPIRY",
		"jwt.issuer":              "SHIPRECON_JWT_ISSUER",
		"upload.dir":              "SHIPRECON_UPLOAD_DIR",
		"upload.max_file_size_mb": "SHIPRECON_UPLOAD_MAX_FILE_SIZE_MB",
		"log.level":               "SHIPRECON_LOG_LEVEL",
		"log.format":              "SHIPRECON_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SHIPRECON_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SHIPRECON_SERVER_PORT") == "" {
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
	cfg.Upload = UploadConfig{
		Dir:           v.GetString("upload.dir"),
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
