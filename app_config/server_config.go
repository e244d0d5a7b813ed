package app_config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPort            = "6001"
	defaultTokenExpiration = 72 * time.Hour
	defaultAssetsDir       = "public/assets"
)

// ServerConfig carries every process-wide setting the handlers and middleware
// need. It is constructed exactly once in main and passed by reference, no
// handler reads the environment directly.
type ServerConfig struct {
	// Port the API server listens on.
	Port string
	// JWTSecret signs and verifies every issued bearer token.
	JWTSecret string
	// TokenExpiration is the lifetime of an issued token.
	TokenExpiration time.Duration
	// BcryptCost is the bcrypt work factor for password hashing. Tunable, the
	// default of 10 matches bcrypt.DefaultCost.
	BcryptCost int
	// AssetsDir is where the local asset store writes uploaded images.
	AssetsDir string
	// S3Bucket, when non empty, switches the asset store to S3.
	S3Bucket string
}

// LoadServerConfig builds a ServerConfig from the environment. Call after
// dotenv.LoadDotEnvs so .env files are visible.
func LoadServerConfig() *ServerConfig {
	cfg := &ServerConfig{
		Port:            os.Getenv("PORT"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenExpiration: defaultTokenExpiration,
		BcryptCost:      bcrypt.DefaultCost,
		AssetsDir:       os.Getenv("ASSETS_DIR"),
		S3Bucket:        os.Getenv("ASSET_S3_BUCKET"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = defaultAssetsDir
	}
	if ttl := os.Getenv("TOKEN_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			cfg.TokenExpiration = time.Duration(hours) * time.Hour
		}
	}
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		if c, err := strconv.Atoi(cost); err == nil && c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			cfg.BcryptCost = c
		}
	}
	return cfg
}
