package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	LogDir      string

	// Asset storage
	AssetBackend string // "disk" or "s3"
	AssetDir     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3Bucket     string
	S3UseSSL     bool

	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
		LogDir:      getEnv("LOG_DIR", ""),

		AssetBackend: getEnv("ASSET_BACKEND", "disk"),
		AssetDir:     getEnv("ASSET_DIR", "data/assets"),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
		S3Bucket:     getEnv("S3_BUCKET", "inkwell-assets"),
		S3UseSSL:     getEnv("S3_USE_SSL", "false") == "true",

		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// fileConfig mirrors the optional config.yaml overlay. Only fields present
// in the file override what the environment provided.
type fileConfig struct {
	Port         string `yaml:"port"`
	Environment  string `yaml:"environment"`
	DatabaseURL  string `yaml:"database_url"`
	CORSOrigins  string `yaml:"cors_origins"`
	TablePrefix  string `yaml:"table_prefix"`
	LogDir       string `yaml:"log_dir"`
	AssetBackend string `yaml:"asset_backend"`
	AssetDir     string `yaml:"asset_dir"`
	S3Endpoint   string `yaml:"s3_endpoint"`
	S3AccessKey  string `yaml:"s3_access_key"`
	S3SecretKey  string `yaml:"s3_secret_key"`
	S3Bucket     string `yaml:"s3_bucket"`
}

// ApplyFile overlays settings from a YAML file onto the config. A missing
// file is not an error; a malformed one is.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.Environment != "" {
		c.Environment = fc.Environment
		c.TablePrefix = getTablePrefix(fc.Environment)
	}
	if fc.DatabaseURL != "" {
		c.DatabaseURL = fc.DatabaseURL
	}
	if fc.CORSOrigins != "" {
		c.CORSOrigins = fc.CORSOrigins
	}
	if fc.TablePrefix != "" {
		c.TablePrefix = fc.TablePrefix
	}
	if fc.LogDir != "" {
		c.LogDir = fc.LogDir
	}
	if fc.AssetBackend != "" {
		c.AssetBackend = fc.AssetBackend
	}
	if fc.AssetDir != "" {
		c.AssetDir = fc.AssetDir
	}
	if fc.S3Endpoint != "" {
		c.S3Endpoint = fc.S3Endpoint
	}
	if fc.S3AccessKey != "" {
		c.S3AccessKey = fc.S3AccessKey
	}
	if fc.S3SecretKey != "" {
		c.S3SecretKey = fc.S3SecretKey
	}
	if fc.S3Bucket != "" {
		c.S3Bucket = fc.S3Bucket
	}

	return nil
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
