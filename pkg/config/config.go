package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Log      LogConfig
	Storage  StorageConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig verifies session tokens issued by the external login flow.
// This service never issues tokens itself.
type JWTConfig struct {
	Secret string
}

// AdminConfig is the injected authorization policy: only these emails may
// call mutating routes. Comes from ADMIN_EMAILS (comma-separated) so tests
// and deployments can substitute it.
type AdminConfig struct {
	Emails []string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type CORSConfig struct {
	AllowOrigins string
}

type StorageConfig struct {
	Type     string // local, s3
	BasePath string // local: ./uploads
	BaseURL  string // local: URL that serves BasePath

	S3 S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine; plain environment variables take over.
	_ = godotenv.Load()

	logMaxSize := getEnvInt("LOG_MAX_SIZE", 100)
	logMaxBackups := getEnvInt("LOG_MAX_BACKUPS", 5)
	logMaxAge := getEnvInt("LOG_MAX_AGE", 30)
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"
	s3UseSSL := getEnv("S3_USE_SSL", "true") == "true"

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Shop Admin API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "shopadmin"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Admin: AdminConfig{
			Emails: parseList(getEnv("ADMIN_EMAILS", "")),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		},
		Storage: StorageConfig{
			Type:     getEnv("STORAGE_TYPE", "local"),
			BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "s3.amazonaws.com"),
				AccessKey: getEnv("S3_ACCESS_KEY", ""),
				SecretKey: getEnv("S3_SECRET_KEY", ""),
				Bucket:    getEnv("S3_BUCKET", "shopadmin-uploads"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "eu-north-1"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// parseList splits a comma-separated env value, dropping empties.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var items []string
	for _, p := range parts {
		item := strings.TrimSpace(p)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
