package config

import "time"

// RateLimitConfig controls the Redis fixed-window request limiter. Limit is
// the number of requests allowed per Window for a single client key.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig, clamping nonsensical values to usable minimums.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_LIMIT", 120),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
