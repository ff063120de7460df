package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string
	PostgresConnStr  string
	TemporalHostPort string
	JWTSecret        string
}

// Load reads configuration from the environment, with a .env file as the
// local-development fallback.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		PostgresConnStr:  getEnv("POSTGRES_CONN_STR", ""),
		TemporalHostPort: getEnv("TEMPORAL_HOSTPORT", "localhost:7233"),
		JWTSecret:        getEnv("JWT_SECRET", "supersecretjwtkey"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
