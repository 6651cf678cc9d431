//go:build property
// +build property

package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/viper"

	"github.com/supafox/supafox/internal/auth"
)

// TestConfigurationProperties tests configuration loading and validation properties
func TestConfigurationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(12345)
	properties := gopter.NewProperties(parameters)

	properties.Property("port range decides validity", prop.ForAll(
		func(port int) bool {
			v := viper.New()
			SetDefaults(v)
			v.Set("server.port", port)
			_, err := LoadFrom(v)
			return (err == nil) == (port >= 0 && port <= 65535)
		},
		gen.IntRange(-1000, 70000),
	))

	properties.Property("loaded route tables never overlap", prop.ForAll(
		func(protected, authOnly []string) bool {
			v := viper.New()
			SetDefaults(v)
			v.Set("routes.protected", prefixAll(protected))
			v.Set("routes.auth_only", prefixAll(authOnly))
			v.Set("routes.login", "/signin")
			v.Set("routes.landing", "/home")

			cfg, err := LoadFrom(v)
			if err != nil {
				return true
			}
			routes := cfg.RouteTable()
			for _, p := range routes.Protected {
				for _, a := range routes.AuthOnly {
					if auth.Matches(p, a) || auth.Matches(a, p) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOfN(3, gen.OneConstOf("a", "a/b", "b", "c", "c/d/e")),
		gen.SliceOfN(3, gen.OneConstOf("a", "b/c", "d", "c/d", "e")),
	))

	properties.TestingRun(t)
}

func prefixAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = "/" + p
	}
	return out
}
