// Package security produces the per-request CSP nonce, the security response
// headers and the CSP violation report endpoint.
package security

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"net/http"
	"regexp"

	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/logging"
)

// NonceHeader carries the nonce on the forwarded request and on the response.
const NonceHeader = "X-Nonce"

const nonceBytes = 16

var noncePattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// randReader is swapped in tests to simulate an unavailable random source.
var randReader io.Reader = rand.Reader

// GenerateNonce returns 16 random bytes encoded as standard base64. A failing
// random source is a configuration error; callers must not serve the request.
func GenerateNonce() (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		appErr := errors.NewConfigError("NONCE_UNAVAILABLE", "failed to generate nonce")
		appErr.Cause = err
		return "", appErr
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// ValidNonce reports whether s has the shape of a base64 nonce.
func ValidNonce(s string) bool {
	return noncePattern.MatchString(s)
}

// NonceFromRequest reads the nonce forwarded by the pipeline. A missing header
// yields "". A malformed one is logged and dropped so the page renders
// without it.
func NonceFromRequest(r *http.Request, logger logging.Logger) string {
	nonce := r.Header.Get(NonceHeader)
	if nonce == "" {
		return ""
	}
	if !ValidNonce(nonce) {
		if logger != nil {
			logger.Warn(r.Context(),
				errors.NewSecurityError("INVALID_NONCE", "nonce header failed validation"),
				"Ignoring malformed nonce",
				"path", r.URL.Path)
		}
		return ""
	}
	return nonce
}

type nonceKey struct{}

// WithNonce stores nonce in ctx for handlers and in templ's context so
// components can read it with templ.GetNonce.
func WithNonce(ctx context.Context, nonce string) context.Context {
	ctx = context.WithValue(ctx, nonceKey{}, nonce)
	return templ.WithNonce(ctx, nonce)
}

// NonceFromContext returns the nonce stored by WithNonce.
func NonceFromContext(ctx context.Context) string {
	if nonce, ok := ctx.Value(nonceKey{}).(string); ok {
		return nonce
	}
	return ""
}
