package configs

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every runtime setting of the application, read once at startup
// from the environment (optionally seeded from a .env file).
type Config struct {
	AppEnv string
	Host   string
	Port   string

	// DBDriver selects the storage engine: "sqlite" (default) or "postgres".
	// For sqlite, DBDSN is the database file path; for postgres a full DSN.
	DBDriver string
	DBDSN    string

	// AdminPasswordHash is the bcrypt hash the single admin credential is
	// checked against.
	AdminPasswordHash string

	PublicDir string
	ViewsDir  string

	SeedDemo bool

	BackupEnabled  bool
	BackupDir      string
	BackupInterval time.Duration
	BackupKeep     int
}

// ErrAdminPasswordMissing is returned when neither ADMIN_PASSWORD_HASH nor
// ADMIN_PASSWORD is configured.
var ErrAdminPasswordMissing = errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")

// Load reads the configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win over file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "3000"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", "data/invitations.db"),
		PublicDir:      getEnv("PUBLIC_DIR", "./public"),
		ViewsDir:       getEnv("VIEWS_DIR", "./views"),
		SeedDemo:       getEnvBool("SEED_DEMO_DATA", false),
		BackupEnabled:  getEnvBool("BACKUP_ENABLED", false),
		BackupDir:      getEnv("BACKUP_DIR", "data/backups"),
		BackupInterval: getEnvDuration("BACKUP_INTERVAL", 6*time.Hour),
		BackupKeep:     getEnvInt("BACKUP_KEEP", 5),
	}

	hash, err := resolveAdminPasswordHash()
	if err != nil {
		return nil, err
	}
	cfg.AdminPasswordHash = hash

	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// resolveAdminPasswordHash prefers a pre-computed bcrypt hash; a plaintext
// ADMIN_PASSWORD is hashed at startup so the plaintext never lives beyond
// process boot.
func resolveAdminPasswordHash() (string, error) {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return hash, nil
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return "", ErrAdminPasswordMissing
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
