package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBDebug     bool

	Port        string
	GinMode     string
	CORSOrigins []string

	// Object holding the reference-data seed document.
	SeedBucket string
	SeedKey    string
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenvOrDefault("DB_HOST", "localhost"),
		DBPort:      getenvOrDefault("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSSLMode:   getenvOrDefault("DB_SSLMODE", "disable"),
		DBDebug:     getenvBool("DB_DEBUG"),
		Port:        getenvOrDefault("PORT", "3001"),
		GinMode:     os.Getenv("GIN_MODE"),
		CORSOrigins: splitList(getenvOrDefault("CORS_ORIGINS", "*")),
		SeedBucket:  os.Getenv("SEED_BUCKET"),
		SeedKey:     getenvOrDefault("SEED_KEY", "seed/reference.json"),
	}
}

// DSN returns DATABASE_URL when set, otherwise a key/value postgres DSN.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
