package auth

import (
	"strings"

	"github.com/supafox/supafox/internal/errors"
)

// RouteClass is the access class of a request path.
type RouteClass int

const (
	Public RouteClass = iota
	Protected
	AuthOnly
)

func (c RouteClass) String() string {
	switch c {
	case Protected:
		return "protected"
	case AuthOnly:
		return "auth-only"
	default:
		return "public"
	}
}

// Routes holds the guarded route prefixes and the redirect targets.
type Routes struct {
	// Protected paths require a user; anonymous requests go to Login.
	Protected []string
	// AuthOnly paths are for anonymous users; signed-in requests go to Landing.
	AuthOnly []string
	Login    string
	Landing  string
}

// DefaultRoutes returns the stock route tables.
func DefaultRoutes() Routes {
	return Routes{
		Protected: []string{"/dashboard", "/account", "/settings"},
		AuthOnly:  []string{"/login", "/signup", "/auth"},
		Login:     "/login",
		Landing:   "/account",
	}
}

// Matches reports whether path is route or lies beneath it.
func Matches(path, route string) bool {
	return path == route || strings.HasPrefix(path, route+"/")
}

func matchesAny(path string, routes []string) bool {
	for _, route := range routes {
		if Matches(path, route) {
			return true
		}
	}
	return false
}

// Classify returns the class of path. Validated route tables never overlap,
// so at most one class matches.
func (rt Routes) Classify(path string) RouteClass {
	switch {
	case matchesAny(path, rt.Protected):
		return Protected
	case matchesAny(path, rt.AuthOnly):
		return AuthOnly
	default:
		return Public
	}
}

// Validate checks that every route is absolute and that no path can be both
// protected and auth-only.
func (rt Routes) Validate() error {
	for _, list := range [][]string{rt.Protected, rt.AuthOnly} {
		for _, route := range list {
			if !strings.HasPrefix(route, "/") || (route != "/" && strings.HasSuffix(route, "/")) {
				return errors.NewConfigError("INVALID_ROUTE", "routes must be absolute paths without a trailing slash").
					WithContext("route", route)
			}
		}
	}

	for _, p := range rt.Protected {
		for _, a := range rt.AuthOnly {
			if Matches(p, a) || Matches(a, p) {
				return errors.NewConfigError("OVERLAPPING_ROUTES", "protected and auth-only routes overlap").
					WithContext("protected", p).
					WithContext("auth_only", a)
			}
		}
	}

	if !strings.HasPrefix(rt.Login, "/") || !strings.HasPrefix(rt.Landing, "/") {
		return errors.NewConfigError("INVALID_REDIRECT", "login and landing must be absolute paths").
			WithContext("login", rt.Login).
			WithContext("landing", rt.Landing)
	}
	if rt.Classify(rt.Login) == Protected {
		return errors.NewConfigError("REDIRECT_LOOP", "login route is protected").
			WithContext("login", rt.Login)
	}
	if rt.Classify(rt.Landing) == AuthOnly {
		return errors.NewConfigError("REDIRECT_LOOP", "landing route is auth-only").
			WithContext("landing", rt.Landing)
	}
	return nil
}
