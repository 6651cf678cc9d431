package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/supafox/supafox/internal/auth"
	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/logging"
)

const maxResponseBytes = 1 << 20

// Client talks to the GoTrue API of one Supabase project.
type Client struct {
	cfg        Config
	baseURL    *url.URL
	cookieName string
	httpClient *http.Client
	logger     logging.Logger
	now        func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its timeout takes precedence over
// Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Client for cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, _ := url.Parse(strings.TrimRight(cfg.URL, "/"))

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cfg.RefreshMargin <= 0 {
		cfg.RefreshMargin = time.Minute
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    base,
		cookieName: cfg.SessionCookieName(),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.NopLogger{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("supabase")
	return c, nil
}

var (
	sharedMu sync.Mutex
	shared   *Client
)

// Shared returns the process-wide client, creating it from the environment on
// first use. A failed creation is not cached, so a later call retries.
func Shared(opts ...Option) (*Client, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		return shared, nil
	}
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	c, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	shared = c
	return shared, nil
}

// SharedProvider is an auth.Provider backed by Shared. Missing configuration
// surfaces per request as a configuration error.
func SharedProvider(opts ...Option) auth.Provider {
	return auth.ProviderFunc(func(ctx context.Context, jar auth.CookieJar) (*auth.User, error) {
		c, err := Shared(opts...)
		if err != nil {
			return nil, err
		}
		return c.GetUser(ctx, jar)
	})
}

// CookieName returns the session cookie name.
func (c *Client) CookieName() string {
	return c.cookieName
}

// GetUser implements auth.Provider. It refreshes a session that is about to
// expire, writing the rotated cookies through jar, then asks GoTrue who the
// access token belongs to.
func (c *Client) GetUser(ctx context.Context, jar auth.CookieJar) (*auth.User, error) {
	cookies := jar.GetAll()
	value, ok := readSessionCookie(cookies, c.cookieName)
	if !ok {
		return nil, nil
	}

	session, err := decodeSession(value)
	if err != nil || session.AccessToken == "" {
		c.logger.Debug(ctx, "Discarding unreadable session cookie")
		jar.SetAll(clearCookies(c.cookieName, cookies))
		return nil, nil
	}

	if c.expiresSoon(session) {
		refreshed, err := c.refresh(ctx, session.RefreshToken)
		if err != nil {
			if errors.IsType(err, errors.ErrorTypeAuth) {
				c.logger.Info(ctx, "Refresh token rejected, clearing session")
				jar.SetAll(clearCookies(c.cookieName, cookies))
				return nil, nil
			}
			return nil, err
		}

		encoded, err := encodeSession(refreshed)
		if err != nil {
			return nil, errors.NewInternalError("SESSION_ENCODE", "failed to encode session", err)
		}
		jar.SetAll(sessionCookies(c.cookieName, encoded, cookies))
		session = refreshed
	}

	return c.fetchUser(ctx, session.AccessToken)
}

// expiresSoon reads the exp claim without verifying the signature; GoTrue
// verifies the token on the /user call. expires_at is the fallback.
func (c *Client) expiresSoon(s *Session) bool {
	var exp time.Time

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, &claims); err == nil && claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	} else if s.ExpiresAt > 0 {
		exp = time.Unix(s.ExpiresAt, 0)
	} else {
		return false
	}

	return exp.Sub(c.now()) < c.cfg.RefreshMargin
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, errors.NewAuthError("REFRESH_REJECTED", "session has no refresh token", nil)
	}

	body, _ := json.Marshal(map[string]string{"refresh_token": refreshToken})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/auth/v1/token", url.Values{"grant_type": {"refresh_token"}}),
		bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewInternalError("REQUEST_BUILD", "failed to build refresh request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, c.cfg.AnonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError("PROVIDER_UNREACHABLE", "refresh request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, errors.NewAuthError("REFRESH_REJECTED", "refresh token rejected", nil).
			WithContext("status", resp.StatusCode)
	default:
		return nil, errors.NewNetworkError("PROVIDER_ERROR", "unexpected refresh response", nil).
			WithContext("status", resp.StatusCode)
	}

	var s Session
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&s); err != nil {
		return nil, errors.NewNetworkError("PROVIDER_ERROR", "malformed refresh response", err)
	}
	if s.AccessToken == "" {
		return nil, errors.NewNetworkError("PROVIDER_ERROR", "refresh response has no access token", nil)
	}
	if s.ExpiresAt == 0 && s.ExpiresIn > 0 {
		s.ExpiresAt = c.now().Add(time.Duration(s.ExpiresIn) * time.Second).Unix()
	}
	return &s, nil
}

func (c *Client) fetchUser(ctx context.Context, accessToken string) (*auth.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/auth/v1/user", nil), nil)
	if err != nil {
		return nil, errors.NewInternalError("REQUEST_BUILD", "failed to build user request", err)
	}
	c.authorize(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError("PROVIDER_UNREACHABLE", "user request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, nil
	default:
		return nil, errors.NewNetworkError("PROVIDER_ERROR", "unexpected user response", nil).
			WithContext("status", resp.StatusCode)
	}

	var user auth.User
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&user); err != nil {
		return nil, errors.NewNetworkError("PROVIDER_ERROR", "malformed user response", err)
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (c *Client) authorize(req *http.Request, bearer string) {
	req.Header.Set("apikey", c.cfg.AnonKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", bearer))
	req.Header.Set("Accept", "application/json")
}
