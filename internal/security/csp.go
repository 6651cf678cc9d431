package security

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/supafox/supafox/internal/errors"
)

// Environment selects the deployment-specific parts of the policy.
type Environment string

const (
	Production  Environment = "production"
	Preview     Environment = "preview"
	Development Environment = "development"
)

// ParseEnvironment validates an environment name.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(s))); env {
	case Production, Preview, Development:
		return env, nil
	default:
		return "", errors.NewConfigError("INVALID_ENVIRONMENT",
			"environment must be production, preview or development").
			WithContext("environment", s)
	}
}

// Deployed reports whether e is a built deployment. Preview builds are
// production builds with the toolbar allowance on top.
func (e Environment) Deployed() bool {
	return e == Production || e == Preview
}

// Directives maps a CSP directive name to its source list. A directive with
// no sources, such as upgrade-insecure-requests, is rendered bare.
type Directives map[string][]string

// Clone returns a deep copy of d.
func (d Directives) Clone() Directives {
	out := make(Directives, len(d))
	for name, sources := range d {
		if sources == nil {
			out[name] = nil
			continue
		}
		out[name] = append([]string(nil), sources...)
	}
	return out
}

// Set replaces the sources of a directive.
func (d Directives) Set(name string, sources ...string) {
	d[name] = append([]string(nil), sources...)
}

// Add appends sources that are not already present. Adding to a directive
// that is exactly 'none' replaces it.
func (d Directives) Add(name string, sources ...string) {
	current := d[name]
	if len(current) == 1 && current[0] == "'none'" {
		current = nil
	}
	for _, src := range sources {
		if !contains(current, src) {
			current = append(current, src)
		}
	}
	d[name] = current
}

// String serialises d with directives in lexical order, joined by "; ".
func (d Directives) String() string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		sources := d[name]
		if len(sources) == 0 {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, name+" "+strings.Join(sources, " "))
	}
	return strings.Join(parts, "; ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultDirectives is the baseline policy before per-request overrides.
func DefaultDirectives() Directives {
	return Directives{
		"default-src":     {"'self'"},
		"base-uri":        {"'none'"},
		"child-src":       {"'none'"},
		"form-action":     {"'self'"},
		"frame-ancestors": {"'none'"},
		"frame-src":       {"'none'"},
		"manifest-src":    {"'self'"},
		"media-src":       {"'self'"},
		"object-src":      {"'none'"},
		"style-src":       {"'self'"},
		"worker-src":      {"'self'"},
	}
}

// vercelToolbar is merged into preview deployments so the hosted toolbar can
// load.
var vercelToolbar = Directives{
	"script-src":  {"https://vercel.live"},
	"style-src":   {"https://vercel.live", "'unsafe-inline'"},
	"img-src":     {"https://vercel.live", "https://vercel.com", "data:"},
	"font-src":    {"https://vercel.live", "https://assets.vercel.com"},
	"frame-src":   {"https://vercel.live"},
	"connect-src": {"https://vercel.live", "wss://ws-us3.pusher.com"},
}

// Options configure a Composer.
type Options struct {
	Environment Environment
	// ReportURI adds a report-uri directive when set.
	ReportURI string
	// ExtraSources are appended per directive after the built-in policy.
	ExtraSources map[string][]string
}

// Composer builds the security headers for a request. It holds no per-request
// state and is safe for concurrent use.
type Composer struct {
	opts Options
}

// NewComposer returns a Composer for opts.
func NewComposer(opts Options) *Composer {
	extra := make(map[string][]string, len(opts.ExtraSources))
	for name, sources := range opts.ExtraSources {
		extra[strings.ToLower(name)] = append([]string(nil), sources...)
	}
	opts.ExtraSources = extra
	return &Composer{opts: opts}
}

// Environment returns the configured environment.
func (c *Composer) Environment() Environment {
	return c.opts.Environment
}

// Directives returns the policy for nonce. An empty nonce still produces a
// 'nonce-' token; validation is the caller's job.
func (c *Composer) Directives(nonce string) Directives {
	d := DefaultDirectives()

	d.Set("script-src", "'self'", fmt.Sprintf("'nonce-%s'", nonce), "https://fonts.googleapis.com")
	d.Set("img-src", "'self'", "blob:")
	d.Set("font-src", "'self'", "https://fonts.gstatic.com")
	d.Set("connect-src", "'self'")

	if c.opts.Environment.Deployed() {
		d["upgrade-insecure-requests"] = nil
	}
	switch c.opts.Environment {
	case Preview:
		for name, sources := range vercelToolbar {
			d.Add(name, sources...)
		}
	case Development:
		d.Add("connect-src", "ws:", "wss:")
	}

	for name, sources := range c.opts.ExtraSources {
		d.Add(name, sources...)
	}

	if c.opts.ReportURI != "" {
		d.Set("report-uri", c.opts.ReportURI)
	}
	return d
}

// Policy returns the serialised Content-Security-Policy value for nonce.
func (c *Composer) Policy(nonce string) string {
	return c.Directives(nonce).String()
}

// Compose returns the full set of security headers for nonce.
func (c *Composer) Compose(nonce string) http.Header {
	h := make(http.Header, 14)
	h.Set("Content-Security-Policy", c.Policy(nonce))
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Resource-Policy", "same-origin")
	h.Set("Origin-Agent-Cluster", "?1")
	h.Set("Referrer-Policy", "no-referrer")
	if c.opts.Environment.Deployed() {
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	}
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-DNS-Prefetch-Control", "off")
	h.Set("X-Download-Options", "noopen")
	h.Set("X-Frame-Options", "SAMEORIGIN")
	h.Set("X-Permitted-Cross-Domain-Policies", "none")
	h.Set("X-XSS-Protection", "0")
	return h
}
