// Package server assembles the site: routes, page rendering, static files,
// the middleware chain and, in development, content watching with live
// reload.
package server

import (
	"context"
	"embed"
	stderrors "errors"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/supafox/supafox/internal/auth"
	"github.com/supafox/supafox/internal/auth/supabase"
	"github.com/supafox/supafox/internal/config"
	"github.com/supafox/supafox/internal/content"
	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/livereload"
	"github.com/supafox/supafox/internal/logging"
	"github.com/supafox/supafox/internal/middleware"
	"github.com/supafox/supafox/internal/security"
	"github.com/supafox/supafox/internal/site"
	"github.com/supafox/supafox/internal/watcher"
)

//go:embed assets
var embedded embed.FS

const (
	watchDebounce     = 300 * time.Millisecond
	readHeaderTimeout = 10 * time.Second
)

// Server serves the site.
type Server struct {
	config   *config.Config
	site     *site.Site
	store    *content.Store
	provider auth.Provider
	logger   logging.Logger
	static   fs.FS
	codeCSS  []byte
	hub      *livereload.Hub
	limiter  *middleware.RateLimiter

	serverMutex sync.RWMutex
	httpServer  *http.Server
	watcher     *watcher.FileWatcher
	closed      bool

	shutdownOnce sync.Once
}

// Option configures a Server.
type Option func(*Server)

// WithProvider replaces the shared Supabase provider.
func WithProvider(p auth.Provider) Option {
	return func(s *Server) { s.provider = p }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithStaticFS replaces the embedded static files. Paths in fsys are the URL
// paths without the leading slash.
func WithStaticFS(fsys fs.FS) Option {
	return func(s *Server) { s.static = fsys }
}

// WithStore replaces the on-disk content store.
func WithStore(store *content.Store) Option {
	return func(s *Server) { s.store = store }
}

// New creates a server. The content is not loaded until Start.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.NewConfigError("CONFIG_MISSING", "server configuration is required")
	}

	s := &Server{config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NopLogger{}
	}

	st, err := site.New(cfg.Site.PublicURL)
	if err != nil {
		return nil, err
	}
	s.site = st

	highlighter := content.NewHighlighter(content.DefaultCodeStyle)
	css, err := highlighter.CSS()
	if err != nil {
		return nil, errors.NewInternalError("CODE_STYLE", "failed to build code highlighting stylesheet", err)
	}
	s.codeCSS = []byte(css)

	if s.store == nil {
		s.store = content.NewStore(cfg.Content.Dir,
			content.WithRenderer(content.NewRenderer(highlighter)),
			content.WithLogger(s.logger))
	}
	if s.provider == nil {
		s.provider = supabase.SharedProvider(supabase.WithLogger(s.logger))
	}
	if s.static == nil {
		sub, err := fs.Sub(embedded, "assets")
		if err != nil {
			return nil, errors.NewInternalError("STATIC_FS", "failed to open embedded assets", err)
		}
		s.static = sub
	}

	if cfg.IsDevelopment() && cfg.Content.Watch {
		s.hub = livereload.NewHub(s.logger)
	}
	if rl := cfg.Security.RateLimit; rl.Enabled {
		s.limiter = middleware.NewRateLimiter(middleware.RateLimit{
			RequestsPerMinute: rl.RequestsPerMinute,
			Burst:             rl.Burst,
			TrustedProxies:    cfg.TrustedProxies(),
		}, s.logger)
	}

	s.logger = s.logger.WithComponent("server")
	return s, nil
}

// Store returns the content store.
func (s *Server) Store() *content.Store {
	return s.store
}

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	pipeline := middleware.NewPipeline(middleware.PipelineConfig{
		Resolver: auth.NewResolver(s.provider, s.config.RouteTable(), s.logger),
		Composer: security.NewComposer(s.config.SecurityOptions()),
		Assets:   middleware.NewAssetMatcher(s.config.Security.AssetPrefixes, s.config.Security.AssetExtensions),
		Logger:   s.logger,
	})
	chain := middleware.NewChain(middleware.ChainDependencies{
		Logger:   s.logger,
		Pipeline: pipeline,
	})
	return chain.Apply(s.routes())
}

// Start loads the content, starts the content watcher in development and
// serves until Shutdown. A content load failure aborts start-up.
func (s *Server) Start(ctx context.Context) error {
	if err := s.store.Reload(ctx); err != nil {
		return err
	}

	if s.hub != nil {
		if err := s.startWatcher(ctx); err != nil {
			s.logger.Warn(ctx, err, "Content watching disabled", "dir", s.config.Content.Dir)
		}
	}

	s.serverMutex.Lock()
	if s.closed {
		s.serverMutex.Unlock()
		return nil
	}
	s.httpServer = &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	s.logger.Info(ctx, "Server listening",
		"addr", server.Addr,
		"environment", string(s.config.Environment()),
		"live_reload", s.hub != nil)

	if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.NewInternalError("LISTEN", "server error", err).
			WithContext("addr", server.Addr)
	}
	return nil
}

func (s *Server) startWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(watchDebounce, s.logger)
	if err != nil {
		return err
	}
	fw.AddFilter(watcher.ContentFilter)
	fw.AddFilter(watcher.NoEditorFilter)
	fw.AddHandler(s.handleContentChange)

	if err := fw.AddRecursive(s.config.Content.Dir); err != nil {
		_ = fw.Stop()
		return err
	}
	if err := fw.Start(ctx); err != nil {
		_ = fw.Stop()
		return err
	}

	s.serverMutex.Lock()
	s.watcher = fw
	s.serverMutex.Unlock()
	return nil
}

// handleContentChange reloads the store and tells the browsers to refresh.
// A failed reload keeps the previous documents and sends nothing.
func (s *Server) handleContentChange(ctx context.Context, events []watcher.ChangeEvent) error {
	paths := make([]string, 0, len(events))
	for _, e := range events {
		paths = append(paths, e.Path)
	}
	s.logger.Debug(ctx, "Content changed", "files", len(paths))

	if err := s.store.Reload(ctx); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Broadcast(livereload.ReloadMessage(paths...))
	}
	return nil
}

// Shutdown stops the watcher, the live reload hub, the rate limiter and the
// listener. Only the first call does anything.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.logger.Info(ctx, "Shutting down server")

		s.serverMutex.Lock()
		s.closed = true
		server := s.httpServer
		fw := s.watcher
		s.serverMutex.Unlock()

		if fw != nil {
			if err := fw.Stop(); err != nil {
				s.logger.Warn(ctx, err, "Failed to stop content watcher")
			}
		}
		if s.hub != nil {
			if err := s.hub.Shutdown(ctx); err != nil {
				s.logger.Warn(ctx, err, "Failed to close live reload clients")
			}
		}
		if s.limiter != nil {
			s.limiter.Stop()
		}
		if server != nil {
			shutdownErr = server.Shutdown(ctx)
		}
	})

	return shutdownErr
}
