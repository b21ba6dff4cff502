// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the root configuration for the blog API process.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Storage    StorageConfig    `json:"storage"`
	Media      MediaConfig      `json:"media"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
	App        AppConfig        `json:"app"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
	// BodyLimitMB caps JSON request bodies; file uploads are capped
	// separately by Media.MaxUploadSizeMB.
	BodyLimitMB int `json:"bodyLimitMb"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration.
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
	ConnectTimeout  int           `json:"connectTimeout"`
}

// StorageConfig holds S3-compatible object storage configuration.
type StorageConfig struct {
	Endpoint        string `json:"endpoint"`
	Region          string `json:"region"`
	BucketName      string `json:"bucketName"`
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	// PublicURL is the CDN/base URL prepended to object keys when building
	// delivery URLs for stored image descriptors.
	PublicURL string `json:"publicUrl"`
}

// MediaConfig holds image processing configuration.
type MediaConfig struct {
	MaxWidth         int      `json:"maxWidth"`
	JPEGQuality      int      `json:"jpegQuality"`
	MaxUploadSizeMB  int      `json:"maxUploadSizeMb"`
	AllowedMimeTypes []string `json:"allowedMimeTypes"`
}

// RateLimitConfig holds rate limiting configuration for a single endpoint.
type RateLimitConfig struct {
	Enabled bool          `json:"enabled"`
	Max     int           `json:"max"`
	Window  time.Duration `json:"window"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints.
type RateLimitsConfig struct {
	Submission RateLimitConfig `json:"submission"`
}

// AppConfig holds application-related configuration.
type AppConfig struct {
	Name string `json:"name"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then values from a .env file
// (if one exists), then hardcoded defaults.
func LoadFromEnv() (*Config, error) {
	// godotenv.Load only sets variables that are not already present in the
	// environment, which yields the precedence above for free.
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return loadFromLookup(os.LookupEnv)
}

// LoadFromMap loads configuration from an in-memory map. Intended for tests:
// no process environment is touched, so callers can run in parallel.
func LoadFromMap(env map[string]string) (*Config, error) {
	return loadFromLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
}

type lookupFunc func(string) (string, bool)

func loadFromLookup(lookup lookupFunc) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:        getOrDefault(lookup, "HOST", "localhost"),
			Port:        getInt(lookup, "SERVER_PORT", 8080),
			BaseRoute:   getOrDefault(lookup, "BASE_ROUTE", "/api"),
			WebDomain:   getOrDefault(lookup, "WEB_DOMAIN", "http://localhost:3000"),
			Debug:       getBool(lookup, "DEBUG", false),
			BodyLimitMB: getInt(lookup, "BODY_LIMIT_MB", 50),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            getOrDefault(lookup, "POSTGRES_HOST", "localhost"),
				Port:            getInt(lookup, "POSTGRES_PORT", 5432),
				Username:        getOrDefault(lookup, "POSTGRES_USERNAME", ""),
				Password:        getOrDefault(lookup, "POSTGRES_PASSWORD", ""),
				Database:        getOrDefault(lookup, "POSTGRES_DATABASE", "quillhub"),
				SSLMode:         getOrDefault(lookup, "POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getInt(lookup, "POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getInt(lookup, "POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getInt(lookup, "POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
				ConnectTimeout:  getInt(lookup, "POSTGRES_CONNECT_TIMEOUT", 10),
			},
		},
		Storage: StorageConfig{
			Endpoint:        getOrDefault(lookup, "STORAGE_ENDPOINT", ""),
			Region:          getOrDefault(lookup, "STORAGE_REGION", "auto"),
			BucketName:      getOrDefault(lookup, "STORAGE_BUCKET_NAME", ""),
			AccessKeyID:     getOrDefault(lookup, "STORAGE_ACCESS_KEY_ID", ""),
			SecretAccessKey: getOrDefault(lookup, "STORAGE_SECRET_ACCESS_KEY", ""),
			PublicURL:       getOrDefault(lookup, "STORAGE_PUBLIC_URL", ""),
		},
		Media: MediaConfig{
			MaxWidth:        getInt(lookup, "MEDIA_MAX_WIDTH", 1600),
			JPEGQuality:     getInt(lookup, "MEDIA_JPEG_QUALITY", 82),
			MaxUploadSizeMB: getInt(lookup, "MEDIA_MAX_UPLOAD_SIZE_MB", 2),
			AllowedMimeTypes: getList(lookup, "MEDIA_ALLOWED_MIME_TYPES",
				[]string{"image/jpeg", "image/png", "image/webp"}),
		},
		RateLimits: RateLimitsConfig{
			Submission: RateLimitConfig{
				Enabled: getBool(lookup, "RATE_LIMIT_SUBMISSION_ENABLED", true),
				Max:     getInt(lookup, "RATE_LIMIT_SUBMISSION_MAX", 10),
				Window:  getDuration(lookup, "RATE_LIMIT_SUBMISSION_WINDOW", time.Minute),
			},
		},
		App: AppConfig{
			Name: getOrDefault(lookup, "APP_NAME", "Quillhub"),
		},
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %d", config.Server.Port)
	}
	if config.Media.JPEGQuality < 1 || config.Media.JPEGQuality > 100 {
		return nil, fmt.Errorf("invalid MEDIA_JPEG_QUALITY: %d", config.Media.JPEGQuality)
	}

	return config, nil
}

func getOrDefault(lookup lookupFunc, key, defaultValue string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(lookup lookupFunc, key string, defaultValue int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBool(lookup lookupFunc, key string, defaultValue bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(lookup lookupFunc, key string, defaultValue time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getList(lookup lookupFunc, key string, defaultValue []string) []string {
	value, ok := lookup(key)
	if !ok || value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
