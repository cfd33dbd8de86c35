package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		UseSSL    bool
		PublicURL string // base URL images are served from
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	// AuthFailOpen lets unauthenticated requests through when auth is not
	// configured. Off unless explicitly requested; see DESIGN.md.
	AuthFailOpen bool

	CORSOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      os.Getenv("DB_SOURCE"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        getEnvDuration("JWT_TTL", 24*time.Hour),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AuthFailOpen:  getEnvBool("AUTH_FAIL_OPEN", false),
	}

	cfg.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	cfg.Minio.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	cfg.Minio.SecretKey = os.Getenv("MINIO_SECRET_KEY")
	cfg.Minio.UseSSL = getEnvBool("MINIO_USE_SSL", false)
	cfg.Minio.PublicURL = os.Getenv("MINIO_PUBLIC_URL")

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	return cfg
}

// AuthConfigured reports whether sessions can be issued and verified at all.
func (c *Config) AuthConfigured() bool {
	return c.JWTSecret != ""
}

// DBConfigured reports whether the row gateway was given a source.
func (c *Config) DBConfigured() bool {
	return c.DBSource != ""
}

// StorageConfigured reports whether the object gateway is reachable.
func (c *Config) StorageConfigured() bool {
	return c.Minio.Endpoint != "" && c.Minio.AccessKey != "" && c.Minio.SecretKey != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
