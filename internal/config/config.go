// Package config builds the runtime configuration: defaults overlaid by
// environment variables, then by command-line flags.
package config

import (
	"errors"
	"flag"
	"os"
	"time"
)

// Config holds every runtime setting.
//
// SessionSecret has no default on purpose: the HMAC key signing session
// cookies must be supplied by the operator, and startup fails without one.
type Config struct {
	Addr          string
	DatabasePath  string
	TemplatesGlob string
	SessionSecret string
	SessionTTL    time.Duration
	RedisAddr     string
	OTLPEndpoint  string
}

func defaults() *Config {
	return &Config{
		Addr:          ":8080",
		DatabasePath:  "./codefolio.db",
		TemplatesGlob: "./web/templates/*.html",
		SessionTTL:    24 * time.Hour,
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CODEFOLIO_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("CODEFOLIO_DATABASE"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("CODEFOLIO_TEMPLATES"); v != "" {
		c.TemplatesGlob = v
	}
	if v := os.Getenv("CODEFOLIO_SESSION_SECRET"); v != "" {
		c.SessionSecret = v
	}
	if v := os.Getenv("CODEFOLIO_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SessionTTL = d
		}
	}
	if v := os.Getenv("REDIS_CONNSTRING"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("CODEFOLIO_OTLP_ENDPOINT"); v != "" {
		c.OTLPEndpoint = v
	}
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("codefolio", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringVar(&c.DatabasePath, "db", c.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&c.TemplatesGlob, "templates", c.TemplatesGlob, "glob of HTML page templates")
	fs.StringVar(&c.SessionSecret, "secret", c.SessionSecret, "session-signing secret (required)")
	fs.DurationVar(&c.SessionTTL, "session-ttl", c.SessionTTL, "session lifetime")
	fs.StringVar(&c.RedisAddr, "redis", c.RedisAddr, "Redis address for the session store (empty: use SQLite)")
	fs.StringVar(&c.OTLPEndpoint, "otlp", c.OTLPEndpoint, "OTLP collector endpoint (empty: telemetry export disabled)")

	return fs.Parse(args)
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("session secret must be set (flag -secret or CODEFOLIO_SESSION_SECRET)")
	}
	return nil
}

// Load builds the configuration from defaults, environment and the given
// command-line arguments, in that order of precedence.
func Load(args []string) (*Config, error) {
	cfg := defaults()
	cfg.applyEnv()
	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
