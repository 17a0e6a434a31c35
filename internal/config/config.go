package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration-valued settings
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in the
// application: strings for identifiers and secrets, ints for durations and
// costs, a duration for the role cache staleness window.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	DBUser         string        // database username
	DBPass         string        // database password (optional)
	DBHost         string        // database host address
	DBPort         string        // database port number
	DBName         string        // database name
	JWTSecret      string        // secret used to sign JWTs
	AccessTTLMin   int           // access token time-to-live in minutes
	RefreshTTLDays int           // refresh token time-to-live in days
	BcryptCost     int           // bcrypt cost for password hashing
	RoleCacheTTL   time.Duration // positive staleness window for resolved roles

	DBMaxOpenConns    int           // connection pool upper bound
	DBMaxIdleConns    int           // idle connections kept warm
	DBConnMaxLifetime time.Duration // recycle connections after this long
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values cause
// the program to exit with a fatal log message. The role cache TTL defaults
// to five minutes: roles rarely change mid-session and the window prevents a
// refetch storm from role-gated dashboards.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),
		RoleCacheTTL:   envDur("ROLE_CACHE_TTL", 5*time.Minute),

		DBMaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: envDur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	return def
}
