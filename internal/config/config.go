package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Provider exposes the application configuration to the rest of the code.
// Handlers and stores depend on this interface rather than the concrete
// environment-backed implementation.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetDBUrl() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetStorageRoot() string
	GetUploadBaseURL() string
}

// Config holds all configuration for the application, loaded from the
// environment.
type Config struct {
	Addr          string
	AppBaseURL    string
	SessionSecret string
	DBUrl         string
	DBNs          string
	DBDb          string
	DBUser        string
	DBPass        string
	StorageRoot   string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		StorageRoot:   getEnv("STORAGE_ROOT", "data/uploads"),
	}

	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		log.Fatal("Required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set.")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetDBUrl() string         { return c.DBUrl }
func (c *Config) GetDBNs() string          { return c.DBNs }
func (c *Config) GetDBDb() string          { return c.DBDb }
func (c *Config) GetDBUser() string        { return c.DBUser }
func (c *Config) GetDBPass() string        { return c.DBPass }
func (c *Config) GetStorageRoot() string   { return c.StorageRoot }

// GetUploadBaseURL is the public prefix user-uploaded blobs are served under.
func (c *Config) GetUploadBaseURL() string { return c.AppBaseURL + "/uploads" }
