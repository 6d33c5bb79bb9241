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
	Log      LogConfig
	Storage  StorageConfig
	File     FileConfig
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

type JWTConfig struct {
	Secret string
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

// StorageConfig holds the S3-compatible object store connection settings
// (MinIO or any S3 endpoint).
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
}

// FileConfig holds the upload constraints. Read once at startup, immutable
// afterwards.
type FileConfig struct {
	AllowedExtensions []string // lower-cased, compared case-insensitively
	MaxFileSize       int64    // bytes
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, plain environment variables are used instead.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	maxFileSize, _ := strconv.ParseInt(getEnv("FILE_MAX_SIZE", "10485760"), 10, 64) // 10MB default
	useSSL := getEnv("STORAGE_USE_SSL", "false") == "true"

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "file-gateway"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "file_gateway"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
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
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("STORAGE_BUCKET", "files"),
			UseSSL:    useSSL,
			Region:    getEnv("STORAGE_REGION", ""),
		},
		File: FileConfig{
			AllowedExtensions: parseExtensions(getEnv("FILE_ALLOWED_EXTENSIONS", "jpg,jpeg,png,gif,pdf,txt,doc,docx,zip")),
			MaxFileSize:       maxFileSize,
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

// parseExtensions splits a comma-separated extension list, trimming and
// lower-casing each entry so later comparisons are case-insensitive. Entries
// are kept even when empty: ",txt" admits extensionless files alongside .txt.
func parseExtensions(s string) []string {
	parts := strings.Split(s, ",")
	extensions := make([]string, len(parts))
	for i, p := range parts {
		extensions[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return extensions
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
