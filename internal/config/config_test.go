package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/security"
)

func newViper(t *testing.T, settings map[string]interface{}) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for key, value := range settings {
		v.Set(key, value)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "localhost:3000", cfg.Addr())
	assert.Equal(t, security.Development, cfg.Environment())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "data/content", cfg.Content.Dir)
	assert.Equal(t, "/api/csp-report", cfg.Security.ReportURI)
	assert.Nil(t, cfg.Security.AssetPrefixes)
	assert.Nil(t, cfg.Security.AssetExtensions)
	assert.Equal(t, RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 20}, cfg.Security.RateLimit)
	assert.Empty(t, cfg.TrustedProxies())

	routes := cfg.RouteTable()
	assert.Equal(t, []string{"/dashboard", "/account", "/settings"}, routes.Protected)
	assert.Equal(t, []string{"/login", "/signup", "/auth"}, routes.AuthOnly)
	assert.Equal(t, "/login", routes.Login)
	assert.Equal(t, "/account", routes.Landing)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		settings    map[string]interface{}
		expectError bool
		field       string
	}{
		{
			name:     "custom port and host",
			settings: map[string]interface{}{"server.port": 8080, "server.host": "0.0.0.0"},
		},
		{
			name:     "environment is case-insensitive",
			settings: map[string]interface{}{"server.environment": " Production "},
		},
		{
			name:        "port out of range",
			settings:    map[string]interface{}{"server.port": 70000},
			expectError: true,
			field:       "server.port",
		},
		{
			name:        "unknown environment",
			settings:    map[string]interface{}{"server.environment": "staging"},
			expectError: true,
			field:       "server.environment",
		},
		{
			name:        "dangerous host",
			settings:    map[string]interface{}{"server.host": "localhost;rm"},
			expectError: true,
			field:       "server.host",
		},
		{
			name:        "overlapping routes",
			settings:    map[string]interface{}{"routes.protected": []string{"/app"}, "routes.auth_only": []string{"/app/login"}},
			expectError: true,
			field:       "routes",
		},
		{
			name:        "relative route",
			settings:    map[string]interface{}{"routes.protected": []string{"dashboard"}},
			expectError: true,
			field:       "routes",
		},
		{
			name:        "relative login",
			settings:    map[string]interface{}{"routes.login": "login"},
			expectError: true,
			field:       "routes",
		},
		{
			name:        "content dir traversal",
			settings:    map[string]interface{}{"content.dir": "../secrets"},
			expectError: true,
			field:       "content.dir",
		},
		{
			name:        "bad log level",
			settings:    map[string]interface{}{"log.level": "loud"},
			expectError: true,
			field:       "log.level",
		},
		{
			name:        "bad log format",
			settings:    map[string]interface{}{"log.format": "xml"},
			expectError: true,
			field:       "log.format",
		},
		{
			name:        "http report uri",
			settings:    map[string]interface{}{"security.report_uri": "http://example.com/csp"},
			expectError: true,
			field:       "security.report_uri",
		},
		{
			name:        "asset prefix slash",
			settings:    map[string]interface{}{"security.asset_prefixes": []string{"/"}},
			expectError: true,
			field:       "security.asset_prefixes",
		},
		{
			name:        "rate limit without budget",
			settings:    map[string]interface{}{"security.rate_limit.requests_per_minute": 0},
			expectError: true,
			field:       "security.rate_limit.requests_per_minute",
		},
		{
			name:        "rate limit burst",
			settings:    map[string]interface{}{"security.rate_limit.burst": -1},
			expectError: true,
			field:       "security.rate_limit.burst",
		},
		{
			name: "disabled rate limit is not checked",
			settings: map[string]interface{}{
				"security.rate_limit.enabled":             false,
				"security.rate_limit.requests_per_minute": 0,
			},
		},
		{
			name:        "invalid trusted proxy",
			settings:    map[string]interface{}{"security.trusted_proxies": []string{"10.0.0.0/8", "lb.internal"}},
			expectError: true,
			field:       "security.trusted_proxies",
		},
		{
			name:     "trusted proxies",
			settings: map[string]interface{}{"security.trusted_proxies": []string{"10.0.0.0/8", "::1"}},
		},
		{
			name:        "invalid public url",
			settings:    map[string]interface{}{"site.public_url": "ftp://example.com"},
			expectError: true,
			field:       "site.public_url",
		},
		{
			name:        "invalid viper config",
			settings:    map[string]interface{}{"server.port": "invalid_port"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(newViper(t, tt.settings))
			if !tt.expectError {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				return
			}

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.IsConfigError(err))
			if tt.field != "" {
				appErr, ok := err.(*errors.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.field, appErr.Context["field"])
			}
		})
	}
}

func TestLoadEnvironmentFallbacks(t *testing.T) {
	t.Run("vercel env", func(t *testing.T) {
		t.Setenv("VERCEL_ENV", "preview")
		cfg, err := LoadFrom(newViper(t, nil))
		require.NoError(t, err)
		assert.Equal(t, security.Preview, cfg.Environment())
	})

	t.Run("supafox environment wins", func(t *testing.T) {
		t.Setenv("VERCEL_ENV", "preview")
		t.Setenv("SUPAFOX_ENVIRONMENT", "production")
		cfg, err := LoadFrom(newViper(t, nil))
		require.NoError(t, err)
		assert.Equal(t, security.Production, cfg.Environment())
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("public url chain", func(t *testing.T) {
		t.Setenv("VERCEL_URL", "supafox-git-main.vercel.app")
		cfg, err := LoadFrom(newViper(t, nil))
		require.NoError(t, err)
		assert.Equal(t, "supafox-git-main.vercel.app", cfg.Site.PublicURL)

		t.Setenv("VERCEL_PROJECT_PRODUCTION_URL", "supafox.dev")
		cfg, err = LoadFrom(newViper(t, nil))
		require.NoError(t, err)
		assert.Equal(t, "supafox.dev", cfg.Site.PublicURL)

		t.Setenv("SUPAFOX_PUBLIC_URL", "http://localhost:4000")
		cfg, err = LoadFrom(newViper(t, nil))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4000", cfg.Site.PublicURL)
	})

	t.Run("prefixed keys", func(t *testing.T) {
		t.Setenv("SUPAFOX_SERVER_PORT", "9090")
		t.Setenv("SUPAFOX_CONTENT_WATCH", "true")
		cfg, err := LoadFrom(newViper(t, nil))
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.True(t, cfg.Content.Watch)
	})
}

func TestSecurityOptions(t *testing.T) {
	cfg, err := LoadFrom(newViper(t, map[string]interface{}{
		"server.environment":     "production",
		"security.extra_sources": map[string][]string{"img-src": {"https://cdn.example.com"}},
		"security.asset_prefixes": []string{},
	}))
	require.NoError(t, err)

	opts := cfg.SecurityOptions()
	assert.Equal(t, security.Production, opts.Environment)
	assert.Equal(t, "/api/csp-report", opts.ReportURI)
	assert.Equal(t, []string{"https://cdn.example.com"}, opts.ExtraSources["img-src"])
	assert.NotNil(t, cfg.Security.AssetPrefixes)
	assert.Empty(t, cfg.Security.AssetPrefixes)
}

func TestValidateConfigWithDetails(t *testing.T) {
	cfg, err := LoadFrom(newViper(t, nil))
	require.NoError(t, err)

	cfg.Server.Port = 80
	cfg.Content.Dir = "does/not/exist"
	cfg.Security.ExtraSources = map[string][]string{"script-src": {"'unsafe-eval'"}}

	result := ValidateConfigWithDetails(cfg)
	assert.True(t, result.Valid)
	assert.False(t, result.HasErrors())
	require.True(t, result.HasWarnings())
	assert.Len(t, result.Warnings, 3)
	assert.Contains(t, result.String(), "Validation warnings:")
	assert.Contains(t, result.String(), "server.port")

	cfg.Security.ExtraSources = map[string][]string{"Script Src": {"x"}}
	result = ValidateConfigWithDetails(cfg)
	assert.False(t, result.Valid)
	assert.Contains(t, result.String(), "Validation errors:")
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, validatePath("data/content"))
	assert.NoError(t, validatePath("./data/content"))
	assert.Error(t, validatePath("../data"))
	assert.Error(t, validatePath("data/../../etc"))
	assert.Error(t, validatePath("data;rm"))
}

func TestTrustedProxies(t *testing.T) {
	cfg, err := LoadFrom(newViper(t, map[string]interface{}{
		"security.trusted_proxies": []string{"10.0.0.0/8", "192.0.2.10"},
	}))
	require.NoError(t, err)

	proxies := cfg.TrustedProxies()
	require.Len(t, proxies, 2)
	assert.True(t, proxies.Contains("10.20.30.40"))
	assert.True(t, proxies.Contains("192.0.2.10"))
	assert.False(t, proxies.Contains("192.0.2.11"))
}
