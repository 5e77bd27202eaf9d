// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level       string
	OutputPaths []string
}

type SessionConfig struct {
	CookieName    string
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type DashboardConfig struct {
	FacilityName string
	// DatasetFile - YAML с мок-данными; пусто - встроенный набор.
	DatasetFile string
}

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Session   SessionConfig
	Dashboard DashboardConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "debug"),
			OutputPaths: splitList(getEnv("LOG_OUTPUT", "stdout")),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE", "dashboard_session"),
			IdleTTL:       getDuration("SESSION_IDLE_TTL", 12*time.Hour),
			SweepInterval: getDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		},
		Dashboard: DashboardConfig{
			FacilityName: getEnv("FACILITY_NAME", "Textile Manufacturing"),
			DatasetFile:  getEnv("DATASET_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Предупреждение: некорректное значение %s=%q, используется %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
