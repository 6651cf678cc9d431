package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supafox/supafox/internal/auth"
	"github.com/supafox/supafox/internal/logging"
	"github.com/supafox/supafox/internal/security"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	c := &Chain{logger: logging.NopLogger{}}
	c.AddMiddleware(mark("outer"))
	c.AddMiddleware(mark("middle"))
	c.AddMiddleware(mark("inner"))

	c.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "middle", "inner", "handler"}, order)
}

func TestChainApplyNilHandlerPanics(t *testing.T) {
	assert.Panics(t, func() { NewChain(ChainDependencies{}).Apply(nil) })
}

func TestNewChainDefaultStack(t *testing.T) {
	assert.Equal(t, 3, NewChain(ChainDependencies{}).Len())

	p := NewPipeline(PipelineConfig{
		Resolver: auth.NewResolver(&countingProvider{}, auth.DefaultRoutes(), nil),
		Composer: security.NewComposer(security.Options{Environment: security.Development}),
	})
	assert.Equal(t, 4, NewChain(ChainDependencies{Pipeline: p}).Len())
}

func TestRequestIDAndAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelInfo, Format: "json", Output: &buf})

	var seen string
	h := NewChain(ChainDependencies{Logger: logger}).Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/legal", nil))

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"request_id":"`+id+`"`)
	assert.Contains(t, out, `"component":"http"`)
}

func TestRequestIDReusesValidInbound(t *testing.T) {
	inbound := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, inbound)
	rec := httptest.NewRecorder()

	RequestID(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, r)
	assert.Equal(t, inbound, rec.Header().Get(RequestIDHeader))

	r.Header.Set(RequestIDHeader, "<script>")
	rec = httptest.NewRecorder()
	RequestID(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, r)
	assert.NotEqual(t, "<script>", rec.Header().Get(RequestIDHeader))
}

func TestRequestIDSkipsAssetResponses(t *testing.T) {
	var seen string
	h := RequestID(NewAssetMatcher(nil, nil))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_next/static/chunk.js", nil))
	assert.Empty(t, rec.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, seen, "the access log still gets an id")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/legal", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelInfo, Format: "json", Output: &buf})

	h := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("template exploded")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(buf.String(), "template exploded"))
}

func TestAssetMatcher(t *testing.T) {
	m := NewAssetMatcher(nil, nil)
	tests := map[string]bool{
		"/_next/static/chunks/main.js":  true,
		"/_next/image?url=x":            true,
		"/static/chroma.css":            true,
		"/favicon.ico":                  true,
		"/web-app/manifest.webmanifest": true,
		"/logo.SVG":                     true,
		"/":                             false,
		"/legal/terms":                  false,
		"/dashboard":                    false,
		"/api/theme":                    false,
	}
	for p, want := range tests {
		assert.Equal(t, want, m.Match(p), p)
	}

	custom := NewAssetMatcher([]string{"/assets/"}, []string{})
	assert.True(t, custom.Match("/assets/x"))
	assert.False(t, custom.Match("/app.js"))
}
