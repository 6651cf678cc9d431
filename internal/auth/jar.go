package auth

import (
	"net/http"
	"strings"
	"sync"
)

// CookieJar is the cookie surface a Provider reads and writes.
type CookieJar interface {
	// GetAll returns the cookies currently visible to the request.
	GetAll() []*http.Cookie
	// SetAll applies mutations to the request view and records them for the
	// response. A cookie with MaxAge < 0 is removed from the request view.
	SetAll(cookies []*http.Cookie)
}

// RequestJar is a CookieJar over an inbound request. Mutations never touch
// the original request; Apply copies the current view onto a derived one.
type RequestJar struct {
	mu       sync.Mutex
	names    []string
	values   map[string]string
	response []*http.Cookie
}

// NewRequestJar snapshots the cookies of r.
func NewRequestJar(r *http.Request) *RequestJar {
	j := &RequestJar{values: make(map[string]string)}
	for _, c := range r.Cookies() {
		j.set(c.Name, c.Value)
	}
	return j
}

func (j *RequestJar) set(name, value string) {
	if _, ok := j.values[name]; !ok {
		j.names = append(j.names, name)
	}
	j.values[name] = value
}

func (j *RequestJar) remove(name string) {
	if _, ok := j.values[name]; !ok {
		return
	}
	delete(j.values, name)
	for i, n := range j.names {
		if n == name {
			j.names = append(j.names[:i], j.names[i+1:]...)
			break
		}
	}
}

// GetAll implements CookieJar.
func (j *RequestJar) GetAll() []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]*http.Cookie, 0, len(j.names))
	for _, name := range j.names {
		out = append(out, &http.Cookie{Name: name, Value: j.values[name]})
	}
	return out
}

// Get returns the value of a cookie in the request view.
func (j *RequestJar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	v, ok := j.values[name]
	return v, ok
}

// SetAll implements CookieJar.
func (j *RequestJar) SetAll(cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, c := range cookies {
		if c == nil || c.Name == "" {
			continue
		}
		if c.MaxAge < 0 {
			j.remove(c.Name)
		} else {
			j.set(c.Name, c.Value)
		}
		copied := *c
		j.response = append(j.response, &copied)
	}
}

// ResponseCookies returns the mutations in the order they were requested.
func (j *RequestJar) ResponseCookies() []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]*http.Cookie(nil), j.response...)
}

// CookieHeader serialises the request view as a Cookie header value.
func (j *RequestJar) CookieHeader() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	parts := make([]string, 0, len(j.names))
	for _, name := range j.names {
		parts = append(parts, (&http.Cookie{Name: name, Value: j.values[name]}).String())
	}
	return strings.Join(parts, "; ")
}

// Apply sets the Cookie header of r to the current request view. r should be
// a clone owned by the caller.
func (j *RequestJar) Apply(r *http.Request) {
	header := j.CookieHeader()
	if header == "" {
		r.Header.Del("Cookie")
		return
	}
	r.Header.Set("Cookie", header)
}
