package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string
	MySQLDSN     string
	RedisAddr    string
	KafkaBrokers []string
	SecretKey    string
	StaticDir    string
	TokenTTL     time.Duration
	ServiceName  string
}

// Load reads the environment (and a .env file when present) into a Config.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		MySQLDSN:     getenv("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/ecommerce?parseTime=true"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "localhost:9092")),
		SecretKey:    getenv("SECRET_KEY", ""),
		StaticDir:    getenv("STATIC_DIR", "static"),
		TokenTTL:     time.Duration(getenvInt("TOKEN_TTL_SECONDS", 3600)) * time.Second,
		ServiceName:  getenv("SERVICE_NAME", "ecommerce-backend"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
