package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the process reads from its environment. It is
// built once in main and passed down by value; nothing else reads env vars.
type Config struct {
	Port        string
	DatabaseDSN string

	// AdminAPIKey is the shared secret compared against the X-API-Key header
	// on every mutating route.
	AdminAPIKey string

	// StaticRoot is the directory the blob store keeps its category
	// subdirectories (images, project_files, executables) under.
	StaticRoot string

	AcceptedOrigins []string

	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
}

// Load reads .env (when present) and snapshots the environment into a Config.
func Load() Config {
	envFile := getString("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		log.Info().Msgf("No %s file found, using process environment", envFile)
	}

	return Config{
		Port:                getString("PORT", "8080"),
		DatabaseDSN:         getString("DATABASE_DSN", ""),
		AdminAPIKey:         getString("ADMIN_API_KEY", ""),
		StaticRoot:          getString("STATIC_ROOT", "static"),
		AcceptedOrigins:     splitList(getString("ACCEPTED_ORIGINS", "http://localhost,http://localhost:3000,http://localhost:8080")),
		ReadTimeoutSeconds:  getInt("READ_TIMEOUT_SECONDS", 180),
		WriteTimeoutSeconds: getInt("WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeoutSeconds:  getInt("IDLE_TIMEOUT_SECONDS", 180),
	}
}

func getString(key string, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
