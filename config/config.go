package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/table-order/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN keeps every table in process memory. The database disappears
// with the process.
const DefaultDSN = "file:tableorder?mode=memory&cache=shared"

type Config struct {
	Port               string
	GinMode            string
	DatabaseDSN        string
	JWTSecret          string
	JWTTTL             time.Duration
	CORSAllowedOrigins []string
	DefaultLanguage    utils.Language
	PublicBaseURL      string
	LoginRatePerMinute int
	BootstrapUsername  string
	BootstrapPassword  string
	SeedDefaults       bool
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debugf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DatabaseDSN:       getEnv("DB_DSN", DefaultDSN),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		DefaultLanguage:   utils.ParseLanguage(utils.English, os.Getenv("DEFAULT_LANGUAGE")),
		PublicBaseURL:     strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		BootstrapUsername: getEnv("BOOTSTRAP_ADMIN_USERNAME", "admin"),
		BootstrapPassword: getEnv("BOOTSTRAP_ADMIN_PASSWORD", "admin12345"),
	}

	if cfg.JWTSecret == "" {
		utils.InfoLogger.Warn("JWT_SECRET not set, using development secret")
		cfg.JWTSecret = "TableOrderDevelopmentSecret"
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	rate, err := strconv.Atoi(getEnv("LOGIN_RATE_PER_MINUTE", "5"))
	if err != nil || rate <= 0 {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_MINUTE %q", os.Getenv("LOGIN_RATE_PER_MINUTE"))
	}
	cfg.LoginRatePerMinute = rate

	seed, err := strconv.ParseBool(getEnv("SEED_DEFAULTS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEFAULTS: %w", err)
	}
	cfg.SeedDefaults = seed

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// InitDB opens the SQLite database behind gorm. A single connection is kept
// open so an in-memory database lives as long as the pool does.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(utils.InfoLogger, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
