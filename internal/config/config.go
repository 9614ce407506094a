package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr      string        `envconfig:"ADDR" default:":3000"`
	DBDSN     string        `envconfig:"DB_DSN" default:"catalog.db"`
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	LogFile   string        `envconfig:"LOG_FILE"`
}

// Load reads an optional .env file and then the process environment.
// TOKEN_TTL=0 issues tokens without an expiry claim.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	log.Printf("[config] ADDR=%s DB_DSN=%s TOKEN_TTL=%s LOG_FILE=%s", cfg.Addr, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile)
	return cfg, nil
}
