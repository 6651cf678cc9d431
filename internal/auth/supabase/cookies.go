package supabase

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/supafox/supafox/internal/auth"
)

const (
	base64Prefix = "base64-"
	// maxChunkSize matches the chunking of Supabase's SSR helpers so cookies
	// written by either side can be read by the other.
	maxChunkSize = 3180
	cookieMaxAge = 400 * 24 * 60 * 60
)

// Session is the GoTrue session stored in the auth cookie.
type Session struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	TokenType    string     `json:"token_type"`
	ExpiresIn    int64      `json:"expires_in"`
	ExpiresAt    int64      `json:"expires_at,omitempty"`
	User         *auth.User `json:"user,omitempty"`
}

// readSessionCookie returns the stored value, joining chunks when the
// unchunked cookie is absent.
func readSessionCookie(cookies []*http.Cookie, name string) (string, bool) {
	byName := make(map[string]string, len(cookies))
	for _, c := range cookies {
		byName[c.Name] = c.Value
	}

	if v, ok := byName[name]; ok && v != "" {
		return v, true
	}

	var b strings.Builder
	for i := 0; ; i++ {
		v, ok := byName[name+"."+strconv.Itoa(i)]
		if !ok {
			break
		}
		b.WriteString(v)
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// decodeSession parses either the base64- form or a raw (possibly
// URL-escaped) JSON value.
func decodeSession(value string) (*Session, error) {
	var raw []byte
	if strings.HasPrefix(value, base64Prefix) {
		data := strings.TrimRight(strings.TrimPrefix(value, base64Prefix), "=")
		decoded, err := base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("decode session cookie: %w", err)
		}
		raw = decoded
	} else {
		if unescaped, err := url.QueryUnescape(value); err == nil {
			value = unescaped
		}
		raw = []byte(value)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse session cookie: %w", err)
	}
	return &s, nil
}

func encodeSession(s *Session) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64Prefix + base64.RawURLEncoding.EncodeToString(data), nil
}

func newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionCookies returns the cookies that store value under name, chunked
// when it does not fit in one, followed by deletions for every stale cookie
// of the same family found in existing.
func sessionCookies(name, value string, existing []*http.Cookie) []*http.Cookie {
	var out []*http.Cookie
	written := make(map[string]bool)

	if len(value) <= maxChunkSize {
		out = append(out, newCookie(name, value, cookieMaxAge))
		written[name] = true
	} else {
		for i := 0; i*maxChunkSize < len(value); i++ {
			end := (i + 1) * maxChunkSize
			if end > len(value) {
				end = len(value)
			}
			chunk := name + "." + strconv.Itoa(i)
			out = append(out, newCookie(chunk, value[i*maxChunkSize:end], cookieMaxAge))
			written[chunk] = true
		}
	}

	for _, stale := range familyNames(name, existing) {
		if !written[stale] {
			out = append(out, newCookie(stale, "", -1))
		}
	}
	return out
}

// clearCookies deletes every cookie of the session family.
func clearCookies(name string, existing []*http.Cookie) []*http.Cookie {
	names := familyNames(name, existing)
	out := make([]*http.Cookie, 0, len(names))
	for _, n := range names {
		out = append(out, newCookie(n, "", -1))
	}
	return out
}

func familyNames(name string, cookies []*http.Cookie) []string {
	var names []string
	for _, c := range cookies {
		if c.Name == name || isChunkOf(c.Name, name) {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names
}

func isChunkOf(cookie, name string) bool {
	suffix, ok := strings.CutPrefix(cookie, name+".")
	if !ok || suffix == "" {
		return false
	}
	_, err := strconv.Atoi(suffix)
	return err == nil
}
