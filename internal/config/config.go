package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	MongoURI string
	MongoDB  string
	LogLevel string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. Every key has a development default so the server can
// start with no configuration at all.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:     getEnv("APP_ADDR", ":8080"),
		MongoURI: getEnv("MONGO_URI", "mongodb://127.0.0.1:27017/UserDb"),
		MongoDB:  getEnv("MONGO_DB", "UserDb"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
