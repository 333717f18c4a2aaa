package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// OrderDefaults holds the fallback values applied to incoming order
// requests before they reach the store.
type OrderDefaults struct {
	TableID       int
	QueueNumber   string
	SessionPrefix string
}

type Config struct {
	AppEnv      string
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	JWTSecret   string
	JWTExpiry   time.Duration
	FrontendDir string
	Defaults    OrderDefaults
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		jwtExpiry = 24 * time.Hour
	}

	defaultTable, err := strconv.Atoi(getEnv("ORDER_DEFAULT_TABLE_ID", "1"))
	if err != nil || defaultTable < 1 {
		defaultTable = 1
	}

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", getEnv("PORT", "3000")),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "thai_kitchen"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTExpiry:   jwtExpiry,
		FrontendDir: getEnv("FRONTEND_DIR", "./frontend"),
		Defaults: OrderDefaults{
			TableID:       defaultTable,
			QueueNumber:   getEnv("ORDER_DEFAULT_QUEUE", "A00"),
			SessionPrefix: getEnv("ORDER_SESSION_PREFIX", "S"),
		},
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Server will run on port: %s", cfg.Port)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
