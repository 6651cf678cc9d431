// Package theme stores the visitor's colour scheme preference in a cookie
// so the server can render the right class on <html> before any script runs.
package theme

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/elnormous/contenttype"

	"github.com/supafox/supafox/internal/logging"
)

// Theme is a colour scheme preference.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// CookieName holds the preference.
const CookieName = "theme"

// Path is where Handler is mounted.
const Path = "/api/theme"

const cookieMaxAge = 365 * 24 * time.Hour

var jsonMediaType = contenttype.NewMediaType("application/json")

// Parse returns the theme named s, or System for anything unknown.
func Parse(s string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark, System:
		return t, true
	default:
		return System, false
	}
}

// FromRequest reads the theme cookie. Missing or invalid values mean System.
func FromRequest(r *http.Request) Theme {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return System
	}
	t, _ := Parse(c.Value)
	return t
}

// Toggle returns the opposite explicit theme. System toggles to Dark, as the
// server cannot know what the browser resolved it to.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Class is the class for the <html> element; empty for System so the
// bootstrap script can decide.
func (t Theme) Class() string {
	if t == System {
		return ""
	}
	return string(t)
}

// Cookie builds the preference cookie. The bootstrap script reads it, so it
// is not HttpOnly.
func Cookie(t Theme, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int(cookieMaxAge / time.Second),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Handler serves POST /api/theme.
//
// Form posts (the no-JS toggle) are answered with a 303 back to the page the
// visitor came from; fetch requests sending JSON get 204.
type Handler struct {
	Secure bool
	Logger logging.Logger
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1024)

	mediaType, err := contenttype.GetMediaType(r)
	isJSON := err == nil && mediaType.Matches(jsonMediaType)

	var raw string
	if isJSON {
		var req themeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		raw = req.Theme
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		raw = r.PostForm.Get("theme")
	}

	t, ok := Parse(raw)
	if !ok {
		logger.Debug(r.Context(), "Rejected theme preference", "theme", logging.SanitizeForLog(raw))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, Cookie(t, h.Secure))

	if isJSON {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns a same-site path to return to: the form's "redirect" field,
// else the Referer path, else "/".
func backTo(r *http.Request) string {
	for _, candidate := range []string{r.PostForm.Get("redirect"), refererPath(r)} {
		if isLocalPath(candidate) {
			return candidate
		}
	}
	return "/"
}

func refererPath(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return ""
	}
	p := u.EscapedPath()
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
