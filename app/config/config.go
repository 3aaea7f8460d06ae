package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	StorageDriver string // "file" or "postgres"
	DataDir       string
	DatabaseURL   string
}

var AppConfig *Config

// Load reads configuration from the environment, picking up a .env file
// when one exists. Every value has a default so the app runs with no
// configuration at all: file storage under ./data, listening on :3000.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	AppConfig = &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":3000"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       getEnv("DATA_DIR", "data"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=jikanwari sslmode=disable"),
	}
	return AppConfig
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
