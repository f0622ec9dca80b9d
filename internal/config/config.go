package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

type Config struct {
	ServerPort    string
	StorageDriver string
	DataFile      string
	SQLitePath    string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverFile),
		DataFile:      getEnv("DATA_FILE", "kanban-data.json"),
		SQLitePath:    getEnv("SQLITE_PATH", "kanban.db"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
