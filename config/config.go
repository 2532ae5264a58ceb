package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AccountPort      int
	DirectoryPort    int
	DirectoryBaseURL string
	JWTSecret        string
	Database         DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "crm"),
		Password: getEnv("DB_PASSWORD", "password"),
		DBName:   getEnv("DB_NAME", "crm_db"),
		UseSSL:   getEnvBool("DB_USE_SSL", false),
	}

	return Config{
		AccountPort:      getEnvInt("ACCOUNT_PORT", 3000),
		DirectoryPort:    getEnvInt("DIRECTORY_PORT", 3001),
		DirectoryBaseURL: getEnv("DIRECTORY_BASE_URL", "http://localhost:3001"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		Database:         dbConfig,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		return valueStr == "true" || valueStr == "1"
	}
	return defaultValue
}
