// Package config centralizes the environment-backed configuration so the
// rest of the tree never calls os.Getenv directly.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	Domain      string // cookie domain, empty for host-only cookies

	Upload UploadConfig
	Seed   SeedConfig
}

type UploadConfig struct {
	Dir     string
	MaxSize int64 // bytes
}

// SeedConfig names the bootstrap super-admin account. The defaults match
// the catalog's original deployment and are only used when the account
// does not exist yet.
type SeedConfig struct {
	SuperAdminUsername string
	SuperAdminPassword string
}

// Load reads the .env file if present, then the environment. JWT_SECRET is
// the only required key.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	maxSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_SIZE", "26214400"), 10, 64) // 25MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_URL", ""),
		JWTSecret:   secret,
		Domain:      os.Getenv("DOMAIN"),
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./uploads"),
			MaxSize: maxSize,
		},
		Seed: SeedConfig{
			SuperAdminUsername: getEnv("SUPER_ADMIN_USERNAME", "superadmin@example.com"),
			SuperAdminPassword: getEnv("SUPER_ADMIN_PASSWORD", "superadmin123"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
