// Package config loads application configuration from environment
// variables.  The storefront runs with almost everything optional: a
// missing backend (MySQL, Redis, AMQP) switches the dependent component
// to its in-memory fallback rather than failing startup.
package config

import "os"

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port catalogd listens on
	HostSecret string // symmetric secret verifying host init data; empty disables verification
	UseMySQL   bool   // whether DB_* variables are set and the SQL catalog store should be used
	DBUser     string // database username
	DBPass     string // database password (optional)
	DBHost     string // database host address
	DBPort     string // database port number
	DBName     string // database name
	UseAMQP    bool   // whether RABBITMQ_URL/AMQP_URL is set and intents should be relayed
}

// Load reads configuration values from environment variables and returns
// a Config.  Only malformed values are fatal; absent optional backends
// simply disable their feature.
func Load() Config {
	cfg := Config{
		Env:        getenv("APP_ENV", "dev"),
		Port:       getenv("APP_PORT", "8080"),
		HostSecret: os.Getenv("HOST_SECRET"),
		DBUser:     os.Getenv("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     os.Getenv("DB_NAME"),
	}
	cfg.UseMySQL = cfg.DBHost != "" && cfg.DBUser != "" && cfg.DBName != ""
	cfg.UseAMQP = os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != ""
	return cfg
}

// getenv retrieves an environment variable, falling back to def when the
// variable is unset or empty.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
