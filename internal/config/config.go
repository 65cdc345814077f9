package config

import (
	"os"
)

type Config struct {
	Port string

	LogLevel string
	Env      string

	// DatabaseURL is a SQLite file path by default; a postgres:// URL
	// switches drivers.
	DatabaseURL string

	BackupDir      string
	BackupSchedule string
}

func LoadConfig() (*Config, error) {
	return &Config{
		Port:           GetEnv("PORT", "8080"),
		DatabaseURL:    GetEnv("DATABASE_URL", "data/tenant.db"),
		Env:            GetEnv("ENV", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		BackupDir:      GetEnv("BACKUP_DIR", "backups"),
		BackupSchedule: GetEnv("BACKUP_SCHEDULE", "0 2 * * *"),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
