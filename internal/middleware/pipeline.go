// Package middleware holds the HTTP middleware chain and the per-request
// pipeline: asset bypass, session resolution, route guarding, nonce
// generation and security headers.
package middleware

import (
	"context"
	"net/http"

	"github.com/supafox/supafox/internal/auth"
	"github.com/supafox/supafox/internal/logging"
	"github.com/supafox/supafox/internal/security"
)

// SessionResolver resolves the user for a request and applies the route
// guard. *auth.Resolver implements it.
type SessionResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*auth.Session, error)
}

// PipelineConfig wires a Pipeline.
type PipelineConfig struct {
	Resolver SessionResolver
	Composer *security.Composer
	Assets   *AssetMatcher
	Logger   logging.Logger
	// NonceFunc defaults to security.GenerateNonce.
	NonceFunc func() (string, error)
}

// Pipeline runs once per request in front of the page handlers:
//
//	asset? -> forward untouched
//	resolve session -> redirect? -> 307 with provider cookies
//	generate nonce -> compose headers -> forward derived request
type Pipeline struct {
	resolver SessionResolver
	composer *security.Composer
	assets   *AssetMatcher
	logger   logging.Logger
	nonce    func() (string, error)
}

// NewPipeline creates a Pipeline. Resolver and Composer are required.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.Resolver == nil {
		panic("Pipeline: resolver cannot be nil")
	}
	if cfg.Composer == nil {
		panic("Pipeline: composer cannot be nil")
	}

	p := &Pipeline{
		resolver: cfg.Resolver,
		composer: cfg.Composer,
		assets:   cfg.Assets,
		logger:   cfg.Logger,
		nonce:    cfg.NonceFunc,
	}
	if p.assets == nil {
		p.assets = NewAssetMatcher(nil, nil)
	}
	if p.logger == nil {
		p.logger = logging.NopLogger{}
	}
	p.logger = p.logger.WithComponent("pipeline")
	if p.nonce == nil {
		p.nonce = security.GenerateNonce
	}
	return p
}

// Wrap is the pipeline as a Middleware.
func (p *Pipeline) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.assets.Match(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		session, err := p.resolver.Resolve(r.Context(), r)
		if err != nil {
			p.logger.Error(r.Context(), err, "Session resolution failed", "path", r.URL.Path)
			internalError(w)
			return
		}

		if session.Redirect != "" {
			for _, c := range session.Cookies {
				http.SetCookie(w, c)
			}
			w.Header().Set("Location", session.Redirect)
			w.WriteHeader(http.StatusTemporaryRedirect)
			return
		}

		nonce, err := p.nonce()
		if err != nil {
			p.logger.Error(r.Context(), err, "Failed to generate nonce")
			internalError(w)
			return
		}

		h := w.Header()
		for name, values := range p.composer.Compose(nonce) {
			h[name] = values
		}
		h.Set(security.NonceHeader, nonce)
		for _, c := range session.Cookies {
			http.SetCookie(w, c)
		}

		derived := session.Request
		if derived == nil {
			derived = r.Clone(r.Context())
		}
		derived.Header.Set(security.NonceHeader, nonce)
		derived = derived.WithContext(security.WithNonce(derived.Context(), nonce))

		next.ServeHTTP(w, derived)
	})
}

func internalError(w http.ResponseWriter) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
