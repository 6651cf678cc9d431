package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/logging"
	"github.com/supafox/supafox/internal/security"
)

// RequestIDHeader is echoed on every response except asset requests.
const RequestIDHeader = "X-Request-ID"

// Chain manages the HTTP middleware stack.
//
// Middlewares run in the order they were added: the first added is the
// outermost wrapper. The default stack is, outer to inner:
//  1. request id
//  2. access logging
//  3. panic recovery
//  4. the request pipeline (when configured)
type Chain struct {
	logger      logging.Logger
	pipeline    *Pipeline
	middlewares []Middleware
}

// Middleware represents a single middleware function
type Middleware func(http.Handler) http.Handler

// ChainDependencies contains all dependencies needed for middleware construction
type ChainDependencies struct {
	Logger   logging.Logger
	Pipeline *Pipeline
}

// NewChain creates a chain with the default stack.
func NewChain(deps ChainDependencies) *Chain {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}

	chain := &Chain{
		logger:      logger.WithComponent("http"),
		pipeline:    deps.Pipeline,
		middlewares: make([]Middleware, 0, 4),
	}
	chain.buildDefaultStack()
	return chain
}

func (c *Chain) buildDefaultStack() {
	var assets *AssetMatcher
	if c.pipeline != nil {
		assets = c.pipeline.assets
	}
	c.AddMiddleware(RequestID(assets))
	c.AddMiddleware(AccessLog(c.logger))
	c.AddMiddleware(Recover(c.logger))
	if c.pipeline != nil {
		c.AddMiddleware(c.pipeline.Wrap)
	}
}

// AddMiddleware appends a middleware inside the ones already added.
func (c *Chain) AddMiddleware(middleware Middleware) {
	c.middlewares = append(c.middlewares, middleware)
}

// Len returns the number of middlewares in the chain.
func (c *Chain) Len() int {
	return len(c.middlewares)
}

// Apply wraps handler with every middleware. It does not modify the chain
// and is safe for concurrent use.
//
// Panics:
// - If handler is nil (programming error)
func (c *Chain) Apply(handler http.Handler) http.Handler {
	if handler == nil {
		panic("Chain.Apply: handler cannot be nil")
	}

	wrapped := handler
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		middleware := c.middlewares[i]
		if middleware == nil {
			panic(fmt.Sprintf("Chain.Apply: middleware at index %d is nil", i))
		}
		wrapped = middleware(wrapped)
	}
	return wrapped
}

// RequestID assigns each request an id, reusing a valid inbound
// X-Request-ID, and stores it in the context for logging. Responses to paths
// matched by assets are left without the header.
func RequestID(assets *AssetMatcher) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			if assets == nil || !assets.Match(r.URL.Path) {
				w.Header().Set(RequestIDHeader, id)
			}
			next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
		})
	}
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer, which the
// live reload websocket upgrade needs.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// AccessLog logs one line per request.
func AccessLog(logger logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info(r.Context(), "Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", rec.written,
				"duration_ms", time.Since(start).Milliseconds(),
				"ip", security.ClientIP(r))
		})
	}
}

// Recover turns a panicking handler into a 500.
func Recover(logger logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					logger.Error(r.Context(),
						errors.NewInternalError("PANIC", "handler panicked", fmt.Errorf("%v", v)),
						"Recovered from panic",
						"path", r.URL.Path)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
