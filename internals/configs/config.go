package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================

func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// =======================
// CONFIG
// =======================

// Config is built once in main and handed to collaborators. Nothing reads
// env vars after startup.
type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	SessionTTL time.Duration

	UploadDir      string
	MaxUploadSize  int
	AllowedExts    []string
	CacheDir       string
	CacheTTL       time.Duration

	Debug bool

	SeedAdminUsername string
	SeedAdminEmail    string
	SeedAdminPassword string
}

func New() *Config {
	exts := strings.Split(GetEnv("ALLOWED_UPLOAD_EXTS", ".jpg,.jpeg,.png,.gif,.webp,.pdf"), ",")
	for i := range exts {
		exts[i] = strings.ToLower(strings.TrimSpace(exts[i]))
	}

	return &Config{
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "ncb_db"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,

		UploadDir:     GetEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: getEnvInt("MAX_UPLOAD_SIZE", 5*1024*1024),
		AllowedExts:   exts,
		CacheDir:      GetEnv("CACHE_DIR", os.TempDir()+"/ncb_api_cache"),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,

		Debug: getEnvBool("APP_DEBUG", false),

		SeedAdminUsername: GetEnv("SEED_ADMIN_USERNAME", "superadmin"),
		SeedAdminEmail:    GetEnv("SEED_ADMIN_EMAIL", "admin@ncb-busan.org"),
		SeedAdminPassword: GetEnv("SEED_ADMIN_PASSWORD", ""),
	}
}
