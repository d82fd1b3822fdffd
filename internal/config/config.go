package config // package config loads application configuration from environment variables

import (
	"os"
	"strings"
)

// Config holds all runtime configuration values. Every field has a
// working default so the lab boots with no environment at all;
// permissive defaults are one of the misconfigurations on display.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port to listen on
	Debug    bool   // debug mode flag, exposed verbatim by /vuln/misconfig
	DBPath   string // filesystem path of the SQLite database
	DataDir  string // base directory served by /files/ and read by /vuln/traversal
	AMQPURL  string // RabbitMQ URL for the audit event queue (empty disables it)
	UseRedis bool   // back the session store with Redis instead of process memory
}

// Load reads configuration from environment variables. Unlike a
// production service nothing here is required: unset variables fall
// back to insecure-but-runnable defaults.
func Load() Config {
	return Config{
		Env:      getenv("APP_ENV", "dev"),
		Port:     getenv("APP_PORT", "5000"),
		Debug:    getenv("APP_DEBUG", "true") == "true",
		DBPath:   getenv("DB_PATH", "vulnerable.db"),
		DataDir:  getenv("DATA_DIR", "data"),
		AMQPURL:  firstEnv("RABBITMQ_URL", "AMQP_URL"),
		UseRedis: strings.EqualFold(getenv("SESSION_BACKEND", "memory"), "redis"),
	}
}

// getenv returns the value of key or def when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// firstEnv returns the first non-empty value among the given keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
