package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	MongoURI     string
	DatabaseName string
	Port         string
	JWTSecret    string
	StripeKey    string
}

// Load reads a .env file if one is present and falls back to the real
// environment for everything else.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DB_NAME", "bistroBoss"),
		Port:         getEnv("PORT", "5000"),
		JWTSecret:    getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeKey:    getEnv("STRIPE_SECRET_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
