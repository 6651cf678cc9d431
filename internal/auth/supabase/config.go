// Package supabase is a minimal Supabase GoTrue client for server-side
// session resolution. It reads and rotates the session cookies written by
// Supabase's SSR helpers.
package supabase

import (
	"net/url"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/supafox/supafox/internal/errors"
)

// Config holds the project settings. ConfigFromEnv fills it from the
// environment.
type Config struct {
	// URL is the project URL, e.g. https://abcd.supabase.co. ENV: SUPABASE_URL
	URL string `env:"SUPABASE_URL,required"`
	// AnonKey is the public anon key. ENV: SUPABASE_ANON_KEY
	AnonKey string `env:"SUPABASE_ANON_KEY,required"`
	// CookieName overrides the sb-<ref>-auth-token default. ENV: SUPABASE_AUTH_COOKIE
	CookieName string `env:"SUPABASE_AUTH_COOKIE"`
	// Timeout bounds each GoTrue round trip. ENV: SUPABASE_TIMEOUT
	Timeout time.Duration `env:"SUPABASE_TIMEOUT,default=10s"`
	// RefreshMargin refreshes access tokens this close to expiry. ENV: SUPABASE_REFRESH_MARGIN
	RefreshMargin time.Duration `env:"SUPABASE_REFRESH_MARGIN,default=60s"`
}

// ConfigFromEnv decodes Config from the environment. Missing required
// variables are reported as a configuration error.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		appErr := errors.ErrMissingEnv("SUPABASE_URL", "SUPABASE_ANON_KEY")
		appErr.Cause = err
		return Config{}, appErr
	}
	return cfg, cfg.Validate()
}

// Validate checks that the URL and key are usable.
func (c Config) Validate() error {
	if c.URL == "" || c.AnonKey == "" {
		return errors.ErrMissingEnv("SUPABASE_URL", "SUPABASE_ANON_KEY")
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.NewConfigError("INVALID_SUPABASE_URL", "SUPABASE_URL must be an absolute http(s) URL").
			WithContext("url", c.URL)
	}
	return nil
}

// SessionCookieName returns the configured cookie name or the Supabase default
// derived from the project reference (the first label of the host).
func (c Config) SessionCookieName() string {
	if c.CookieName != "" {
		return c.CookieName
	}
	ref := "local"
	if u, err := url.Parse(c.URL); err == nil && u.Hostname() != "" {
		ref = strings.Split(u.Hostname(), ".")[0]
	}
	return "sb-" + ref + "-auth-token"
}
