package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	BGGBaseURL   string
	ViewSlugSalt string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A local .env is optional; absence is not an error
	_ = godotenv.Load()

	fs := flag.NewFlagSet("boardshelf", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BGGBaseURL, "bgg", "", "BGG XML API base URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ViewSlugSalt, "slug-salt", "", "Saved-view slug salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4180 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "boardshelf.db"
	}

	if cfg.BGGBaseURL == "" {
		cfg.BGGBaseURL = os.Getenv("BGG_BASE_URL")
	}
	if cfg.BGGBaseURL == "" {
		cfg.BGGBaseURL = "https://boardgamegeek.com/xmlapi2"
	}

	// Secrets - MUST be provided
	if cfg.ViewSlugSalt == "" {
		cfg.ViewSlugSalt = os.Getenv("VIEW_SLUG_SALT")
	}
	if cfg.ViewSlugSalt == "" {
		return Config{}, errors.New("VIEW_SLUG_SALT required")
	}

	return cfg, nil
}
