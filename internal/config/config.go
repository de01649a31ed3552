package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
	Log    LogConfig
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port int
}

// StoreConfig holds the embedded store configuration
type StoreConfig struct {
	Path     string
	SeedDemo bool
	// DemoPassword is the login password given to the seeded demo user.
	DemoPassword string
}

// AuthConfig holds the authentication configuration
type AuthConfig struct {
	JWTSecret string
}

// LogConfig holds the logging configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads the configuration from environment variables. A local
// .env file is honored when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Path:         getEnv("DB_PATH", "data"),
			SeedDemo:     getEnvAsBool("SEED_DEMO", true),
			DemoPassword: getEnv("DEMO_PASSWORD", "password"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "your-secret-key-here"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions to read environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
