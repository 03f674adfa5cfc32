// internal/config/config.go
//
// Runtime configuration, read from the environment.
// A .env file in the working directory is loaded first (development), then
// variables are parsed into Config. Real environment variables win over .env.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the process.
type Config struct {
	Port      string `env:"PORT" envDefault:"5175"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	WordsFile string `env:"WORDS_FILE"` // empty → embedded list
	DBPath    string `env:"DB_PATH"`    // empty → in-memory store

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL     time.Duration `env:"JWT_EXPIRES" envDefault:"24h"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"fourword_game"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	// Seed fixes the word bank's random source; 0 seeds from crypto/rand.
	Seed uint64 `env:"SEED" envDefault:"0"`
}

// Load reads .env files (if present) and parses the environment.
func Load(dotenvFiles ...string) (Config, error) {
	_ = godotenv.Load(dotenvFiles...)
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
