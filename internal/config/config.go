// Package config loads the site configuration using Viper from a YAML file,
// SUPAFOX_ prefixed environment variables and command-line flags.
//
// The Vercel deployment variables are honoured as fallbacks so the server
// behaves the same behind `vercel dev` and in a container:
//
//	server.environment  SUPAFOX_ENVIRONMENT, VERCEL_ENV
//	site.public_url     SUPAFOX_PUBLIC_URL, VERCEL_PROJECT_PRODUCTION_URL, VERCEL_URL
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/supafox/supafox/internal/auth"
	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/security"
)

// EnvPrefix is prepended to every configuration key read from the environment.
const EnvPrefix = "SUPAFOX"

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Site     SiteConfig     `mapstructure:"site" yaml:"site"`
	Routes   RoutesConfig   `mapstructure:"routes" yaml:"routes"`
	Security SecurityConfig `mapstructure:"security" yaml:"security"`
	Content  ContentConfig  `mapstructure:"content" yaml:"content"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	Environment     string        `mapstructure:"environment" yaml:"environment"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type SiteConfig struct {
	PublicURL string `mapstructure:"public_url" yaml:"public_url"`
}

type RoutesConfig struct {
	Protected []string `mapstructure:"protected" yaml:"protected"`
	AuthOnly  []string `mapstructure:"auth_only" yaml:"auth_only"`
	Login     string   `mapstructure:"login" yaml:"login"`
	Landing   string   `mapstructure:"landing" yaml:"landing"`
}

type SecurityConfig struct {
	// ReportURI receives CSP violation reports. Empty disables reporting.
	ReportURI string `mapstructure:"report_uri" yaml:"report_uri"`
	// ExtraSources are appended to the built-in policy, keyed by directive.
	ExtraSources    map[string][]string `mapstructure:"extra_sources" yaml:"extra_sources"`
	AssetPrefixes   []string            `mapstructure:"asset_prefixes" yaml:"asset_prefixes"`
	AssetExtensions []string            `mapstructure:"asset_extensions" yaml:"asset_extensions"`
	// RateLimit applies to the POST endpoints under /api.
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	// TrustedProxies are CIDRs or addresses allowed to set X-Forwarded-For.
	TrustedProxies []string `mapstructure:"trusted_proxies" yaml:"trusted_proxies"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled" yaml:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
	Burst             int  `mapstructure:"burst" yaml:"burst"`
}

type ContentConfig struct {
	Dir   string `mapstructure:"dir" yaml:"dir"`
	Watch bool   `mapstructure:"watch" yaml:"watch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	routes := auth.DefaultRoutes()

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.environment", string(security.Development))
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("site.public_url", "")
	v.SetDefault("routes.protected", routes.Protected)
	v.SetDefault("routes.auth_only", routes.AuthOnly)
	v.SetDefault("routes.login", routes.Login)
	v.SetDefault("routes.landing", routes.Landing)
	v.SetDefault("security.report_uri", "/api/csp-report")
	v.SetDefault("security.extra_sources", map[string][]string{})
	v.SetDefault("security.rate_limit.enabled", true)
	v.SetDefault("security.rate_limit.requests_per_minute", 60)
	v.SetDefault("security.rate_limit.burst", 20)
	v.SetDefault("security.trusted_proxies", []string{})
	v.SetDefault("content.dir", "data/content")
	v.SetDefault("content.watch", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings are consulted after SUPAFOX_SERVER_ENVIRONMENT and
	// SUPAFOX_SITE_PUBLIC_URL, in the order given.
	_ = v.BindEnv("server.environment", EnvPrefix+"_ENVIRONMENT", "VERCEL_ENV")
	_ = v.BindEnv("site.public_url", EnvPrefix+"_PUBLIC_URL", "VERCEL_PROJECT_PRODUCTION_URL", "VERCEL_URL")
}

// Load reads the configuration from the global Viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom decodes, defaults and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError("CONFIG_DECODE", "failed to decode configuration").
			WithContext("error", err.Error())
	}

	// Asset lists keep nil when unset so the matcher falls back to its
	// defaults; an explicit empty list disables that kind of match.
	config.Security.AssetPrefixes = explicitList(v, "security.asset_prefixes", config.Security.AssetPrefixes)
	config.Security.AssetExtensions = explicitList(v, "security.asset_extensions", config.Security.AssetExtensions)

	config.Server.Environment = strings.ToLower(strings.TrimSpace(config.Server.Environment))
	config.Log.Level = strings.ToLower(config.Log.Level)
	config.Log.Format = strings.ToLower(config.Log.Format)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func explicitList(v *viper.Viper, key string, list []string) []string {
	switch {
	case !v.IsSet(key):
		return nil
	case list == nil:
		return []string{}
	default:
		return list
	}
}

// validateConfig turns the first validation error into a config error.
func validateConfig(config *Config) error {
	result := ValidateConfigWithDetails(config)
	if !result.HasErrors() {
		return nil
	}

	first := result.Errors[0]
	err := errors.NewConfigError("INVALID_CONFIG", fmt.Sprintf("%s: %s", first.Field, first.Message)).
		WithContext("field", first.Field)
	if len(result.Errors) > 1 {
		err = err.WithContext("more_errors", len(result.Errors)-1)
	}
	return err
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Environment returns the validated deployment environment.
func (c *Config) Environment() security.Environment {
	env, err := security.ParseEnvironment(c.Server.Environment)
	if err != nil {
		return security.Development
	}
	return env
}

// IsDevelopment reports whether dev-only features (live reload, breakpoint
// indicator) are enabled.
func (c *Config) IsDevelopment() bool {
	return c.Environment() == security.Development
}

// RouteTable converts the routes section for the session resolver.
func (c *Config) RouteTable() auth.Routes {
	return auth.Routes{
		Protected: append([]string(nil), c.Routes.Protected...),
		AuthOnly:  append([]string(nil), c.Routes.AuthOnly...),
		Login:     c.Routes.Login,
		Landing:   c.Routes.Landing,
	}
}

// TrustedProxies parses security.trusted_proxies. Entries were validated by
// Load, so an invalid list yields no trusted proxies.
func (c *Config) TrustedProxies() security.TrustedProxies {
	proxies, err := security.ParseTrustedProxies(c.Security.TrustedProxies)
	if err != nil {
		return nil
	}
	return proxies
}

// SecurityOptions converts the security section for the header composer.
func (c *Config) SecurityOptions() security.Options {
	return security.Options{
		Environment:  c.Environment(),
		ReportURI:    c.Security.ReportURI,
		ExtraSources: c.Security.ExtraSources,
	}
}
