package supabase

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supafox/supafox/internal/auth"
	"github.com/supafox/supafox/internal/errors"
)

const (
	testAnonKey = "anon-key"
	testSecret  = "gotrue-secret"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

// mockGoTrue validates bearer tokens with the shared HS256 secret, like the
// real service does.
type mockGoTrue struct {
	srv          *httptest.Server
	userHits     atomic.Int32
	refreshHits  atomic.Int32
	validRefresh string
	freshToken   string
}

func newMockGoTrue(t *testing.T) *mockGoTrue {
	t.Helper()
	m := &mockGoTrue{validRefresh: "good-refresh"}
	m.freshToken = signToken(t, "user-1", testNow.Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		m.userHits.Add(1)
		if r.Header.Get("apikey") != testAnonKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		claims := jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		}, jwt.WithTimeFunc(func() time.Time { return testNow }))
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    claims.Subject,
			"aud":   "authenticated",
			"role":  "authenticated",
			"email": claims.Subject + "@example.com",
		})
	})
	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		m.refreshHits.Add(1)
		if r.Method != http.MethodPost || r.URL.Query().Get("grant_type") != "refresh_token" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.RefreshToken != m.validRefresh {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(Session{
			AccessToken:  m.freshToken,
			RefreshToken: "next-refresh",
			TokenType:    "bearer",
			ExpiresIn:    3600,
		})
	})
	m.srv = httptest.NewServer(mux)
	t.Cleanup(m.srv.Close)
	return m
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{URL: baseURL, AnonKey: testAnonKey, CookieName: "sb-test-auth-token"},
		WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return c
}

func jarWithSession(t *testing.T, s *Session) *auth.RequestJar {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if s != nil {
		value, err := encodeSession(s)
		require.NoError(t, err)
		r.AddCookie(&http.Cookie{Name: "sb-test-auth-token", Value: value})
	}
	return auth.NewRequestJar(r)
}

func TestGetUserWithoutCookieSkipsNetwork(t *testing.T) {
	m := newMockGoTrue(t)
	c := newTestClient(t, m.srv.URL)

	user, err := c.GetUser(t.Context(), jarWithSession(t, nil))
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, m.userHits.Load())
	assert.Zero(t, m.refreshHits.Load())
}

func TestGetUserValidSession(t *testing.T) {
	m := newMockGoTrue(t)
	c := newTestClient(t, m.srv.URL)

	jar := jarWithSession(t, &Session{
		AccessToken:  signToken(t, "user-1", testNow.Add(30*time.Minute)),
		RefreshToken: "good-refresh",
	})
	user, err := c.GetUser(t.Context(), jar)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "user-1@example.com", user.Email)
	assert.Zero(t, m.refreshHits.Load())
	assert.Empty(t, jar.ResponseCookies())
}

func TestGetUserRefreshesExpiringSession(t *testing.T) {
	m := newMockGoTrue(t)
	c := newTestClient(t, m.srv.URL)

	jar := jarWithSession(t, &Session{
		AccessToken:  signToken(t, "user-1", testNow.Add(10*time.Second)),
		RefreshToken: "good-refresh",
	})
	user, err := c.GetUser(t.Context(), jar)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int32(1), m.refreshHits.Load())

	cookies := jar.ResponseCookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sb-test-auth-token", cookies[0].Name)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	stored, ok := jar.Get("sb-test-auth-token")
	require.True(t, ok)
	s, err := decodeSession(stored)
	require.NoError(t, err)
	assert.Equal(t, m.freshToken, s.AccessToken)
	assert.Equal(t, "next-refresh", s.RefreshToken)
	assert.Equal(t, testNow.Add(time.Hour).Unix(), s.ExpiresAt)
}

func TestGetUserRefreshRejectedClearsSession(t *testing.T) {
	m := newMockGoTrue(t)
	c := newTestClient(t, m.srv.URL)

	jar := jarWithSession(t, &Session{
		AccessToken:  signToken(t, "user-1", testNow.Add(-time.Minute)),
		RefreshToken: "revoked",
	})
	user, err := c.GetUser(t.Context(), jar)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, m.userHits.Load())

	cookies := jar.ResponseCookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	_, ok := jar.Get("sb-test-auth-token")
	assert.False(t, ok)
}

func TestGetUserUnauthorizedIsAnonymous(t *testing.T) {
	m := newMockGoTrue(t)
	c := newTestClient(t, m.srv.URL)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	user, err := c.GetUser(t.Context(), jarWithSession(t, &Session{AccessToken: forged}))
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, int32(1), m.userHits.Load())
}

func TestGetUserProviderDown(t *testing.T) {
	m := newMockGoTrue(t)
	c := newTestClient(t, m.srv.URL)
	m.srv.Close()

	user, err := c.GetUser(t.Context(), jarWithSession(t, &Session{
		AccessToken: signToken(t, "user-1", testNow.Add(time.Hour)),
	}))
	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.IsRecoverable(err))
	assert.False(t, errors.IsConfigError(err))
}

func TestGetUserUnreadableCookie(t *testing.T) {
	m := newMockGoTrue(t)
	c := newTestClient(t, m.srv.URL)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "sb-test-auth-token", Value: "base64-%%%"})
	jar := auth.NewRequestJar(r)

	user, err := c.GetUser(t.Context(), jar)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, m.userHits.Load())
}

func TestConfigFromEnvMissing(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestShared(t *testing.T) {
	sharedMu.Lock()
	shared = nil
	sharedMu.Unlock()
	t.Cleanup(func() {
		sharedMu.Lock()
		shared = nil
		sharedMu.Unlock()
	})

	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	_, err := Shared()
	require.Error(t, err)

	t.Setenv("SUPABASE_URL", "https://abcd1234.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", testAnonKey)

	first, err := Shared()
	require.NoError(t, err)
	second, err := Shared()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "sb-abcd1234-auth-token", first.CookieName())
}

func TestSharedProviderReportsConfigError(t *testing.T) {
	sharedMu.Lock()
	shared = nil
	sharedMu.Unlock()

	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	_, err := SharedProvider().GetUser(t.Context(), jarWithSession(t, nil))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestConfigValidate(t *testing.T) {
	assert.Error(t, Config{URL: "abcd.supabase.co", AnonKey: "k"}.Validate())
	assert.Error(t, Config{URL: "https://abcd.supabase.co"}.Validate())
	assert.NoError(t, Config{URL: "http://127.0.0.1:54321", AnonKey: "k"}.Validate())
	assert.Equal(t, "sb-127-auth-token", Config{URL: "http://127.0.0.1:54321"}.SessionCookieName())
}
