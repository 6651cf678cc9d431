// Package auth resolves the signed-in user for a request and decides whether
// the request may proceed to its route.
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/logging"
)

// User is the identity returned by the provider.
type User struct {
	ID           string                 `json:"id"`
	Aud          string                 `json:"aud"`
	Role         string                 `json:"role"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone,omitempty"`
	AppMetadata  map[string]interface{} `json:"app_metadata,omitempty"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	LastSignInAt *time.Time             `json:"last_sign_in_at,omitempty"`
}

// Provider looks up the current user from the request cookies. It may rotate
// the session by writing cookies through jar. A nil user with a nil error
// means anonymous.
type Provider interface {
	GetUser(ctx context.Context, jar CookieJar) (*User, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, jar CookieJar) (*User, error)

// GetUser implements Provider.
func (f ProviderFunc) GetUser(ctx context.Context, jar CookieJar) (*User, error) {
	return f(ctx, jar)
}

// Session is the outcome of resolving a request.
type Session struct {
	// User is nil for anonymous requests.
	User *User
	// Cookies are the provider's mutations, to be appended to the response.
	Cookies []*http.Cookie
	// Redirect is the target path when the route guard rejected the request.
	Redirect string
	// Request is a clone of the inbound request carrying the mutated Cookie
	// header and the user in its context. Nil when Redirect is set.
	Request *http.Request
}

// Resolver runs the provider lookup and the route guard.
type Resolver struct {
	provider Provider
	routes   Routes
	logger   logging.Logger
}

// NewResolver creates a Resolver. routes should already be validated.
func NewResolver(provider Provider, routes Routes, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Resolver{
		provider: provider,
		routes:   routes,
		logger:   logger.WithComponent("session"),
	}
}

// Routes returns the route tables the resolver guards.
func (rs *Resolver) Routes() Routes {
	return rs.routes
}

// Resolve asks the provider for the current user and applies the route guard.
// Provider failures other than configuration errors are logged and the request
// continues anonymously. A configuration error is returned and must end the
// request with a 500.
func (rs *Resolver) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	jar := NewRequestJar(r)

	user, err := rs.provider.GetUser(ctx, jar)
	if err != nil {
		if errors.IsConfigError(err) {
			return nil, err
		}
		rs.logger.Warn(ctx, err, "Session lookup failed, continuing anonymously",
			"path", r.URL.Path)
		user = nil
	}

	session := &Session{
		User:    user,
		Cookies: jar.ResponseCookies(),
	}

	path := r.URL.Path
	switch rs.routes.Classify(path) {
	case Protected:
		if user == nil {
			session.Redirect = rs.target(rs.routes.Login, r)
			rs.logger.Debug(ctx, "Anonymous request to protected route", "path", path)
			return session, nil
		}
	case AuthOnly:
		if user != nil {
			session.Redirect = rs.target(rs.routes.Landing, r)
			rs.logger.Debug(ctx, "Signed-in request to auth-only route", "path", path)
			return session, nil
		}
	}

	derived := r.Clone(WithUser(ctx, user))
	jar.Apply(derived)
	session.Request = derived
	return session, nil
}

func (rs *Resolver) target(path string, r *http.Request) string {
	if r.URL.RawQuery == "" {
		return path
	}
	return path + "?" + r.URL.RawQuery
}

type userKey struct{}

// WithUser stores user in ctx. A nil user is stored as anonymous.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user stored by WithUser, or nil.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userKey{}).(*User)
	return user
}
