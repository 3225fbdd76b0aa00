package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Gemini    GeminiConfig
	Storage   StorageConfig
	Scraper   ScraperConfig
	Retention RetentionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	MaxRetries  int
	Temperature float32
}

type StorageConfig struct {
	UploadPath   string
	TailoredPath string
	StaticPath   string
	MaxFileSize  int64
}

type ScraperConfig struct {
	Timeout        time.Duration
	UserAgent      string
	UseBrowser     bool
	BrowserTimeout time.Duration
}

// RetentionConfig controls the tailored document janitor. A zero MaxAge
// keeps generated documents forever.
type RetentionConfig struct {
	MaxAge        time.Duration
	SweepInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "cv_agent"),
			SQLitePath: getEnv("SQLITE_PATH", "./cv_agent.db"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			MaxRetries:  getEnvAsInt("GEMINI_MAX_RETRIES", 3),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
		},
		Storage: StorageConfig{
			UploadPath:   getEnv("UPLOAD_PATH", "./uploads"),
			TailoredPath: getEnv("TAILORED_PATH", "./tailored_cvs"),
			StaticPath:   getEnv("STATIC_PATH", "./static"),
			MaxFileSize:  getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Scraper: ScraperConfig{
			Timeout:        getEnvAsDuration("SCRAPER_TIMEOUT", "30s"),
			UserAgent:      getEnv("SCRAPER_USER_AGENT", "Mozilla/5.0 (compatible; CVAgent/1.0)"),
			UseBrowser:     getEnvAsBool("SCRAPER_USE_BROWSER", false),
			BrowserTimeout: getEnvAsDuration("SCRAPER_BROWSER_TIMEOUT", "45s"),
		},
		Retention: RetentionConfig{
			MaxAge:        getEnvAsDuration("TAILORED_RETENTION", "0s"),
			SweepInterval: getEnvAsDuration("TAILORED_SWEEP_INTERVAL", "1h"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == "sqlite" {
		return c.Database.SQLitePath
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
