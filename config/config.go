package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting the gateway needs. Values come from
// the environment, optionally seeded from a .env file in the working
// directory.
type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	SupabaseURL string `env:"SUPABASE_URL,required"`
	SupabaseKey string `env:"SUPABASE_SERVICE_KEY,required"`

	// StorageBucket is the object-storage bucket image uploads land in.
	StorageBucket string `env:"STORAGE_BUCKET" envDefault:"images"`

	JWTSecret     string        `env:"JWT_SECRET" envDefault:"dev-secret-change"`
	AdminTokenTTL time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`

	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	// AdminPasswordHash is an argon2id encoded hash. When empty,
	// AdminPassword is compared in plain text (development only).
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	AdminPassword     string `env:"ADMIN_PASSWORD" envDefault:"admin1234"`

	// BoardTables is the closed set of board tables menu items may
	// reference. Boards outside this list resolve to 404.
	BoardTables []string `env:"BOARD_TABLES" envSeparator:"," envDefault:"board_notice,board_free"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "" {
		return nil, fmt.Errorf("either ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
	}
	return cfg, nil
}
