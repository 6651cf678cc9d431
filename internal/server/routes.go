package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/livereload"
	"github.com/supafox/supafox/internal/pages"
	"github.com/supafox/supafox/internal/security"
	"github.com/supafox/supafox/internal/site"
	"github.com/supafox/supafox/internal/theme"
	"github.com/supafox/supafox/internal/ui/layout"
	"github.com/supafox/supafox/internal/version"
)

const (
	pageCacheControl  = "no-store"
	assetCacheControl = "public, max-age=3600"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /legal", s.handleLegalIndex)
	mux.HandleFunc("GET /legal/{slug...}", s.handleLegalDocument)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	files := http.FileServerFS(s.static)
	mux.HandleFunc("GET "+layout.CodeStylesheetPath, s.handleCodeStyles)
	mux.Handle("GET /static/", files)
	mux.Handle("GET /favicon/", files)
	mux.Handle("GET /web-app/", files)

	// Registered without a method so the handlers answer 405 themselves.
	mux.Handle(theme.Path, s.limit(&theme.Handler{
		Secure: s.config.Environment() == security.Production,
		Logger: s.logger,
	}))
	if uri := s.config.Security.ReportURI; strings.HasPrefix(uri, "/") {
		mux.Handle(uri, s.limit(security.ViolationHandler(s.logger)))
	}

	if s.hub != nil {
		mux.Handle(livereload.Path, s.hub)
	}

	mux.HandleFunc("/", s.handleNotFound)
	return mux
}

// limit applies the API rate limiter when one is configured.
func (s *Server) limit(h http.Handler) http.Handler {
	if s.limiter == nil {
		return h
	}
	return s.limiter.Middleware()(h)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, s.site.DefaultMetadata(), pages.Home(s.site))
}

func (s *Server) handleLegalIndex(w http.ResponseWriter, r *http.Request) {
	meta := s.site.PageMetadata(pages.LegalTitle, pages.LegalDescription)
	meta.URL = s.site.AbsoluteURL("/legal")
	s.render(w, r, http.StatusOK, meta, pages.LegalIndex(s.store.Published()))
}

func (s *Server) handleLegalDocument(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if strings.Trim(slug, "/") == "" {
		s.handleLegalIndex(w, r)
		return
	}

	doc, ok := s.store.Find(slug)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	meta := s.site.ArticleMetadata(doc.Title, doc.Description, doc.Slug)
	s.render(w, r, http.StatusOK, meta, pages.LegalDocument(doc))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	meta := s.site.PageMetadata("Page not found", "")
	meta.Robots = "noindex"
	s.render(w, r, http.StatusNotFound, meta, pages.NotFound())
}

func (s *Server) handleCodeStyles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", assetCacheControl)
	_, _ = w.Write(s.codeCSS)
}

type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Documents int       `json:"documents"`
	LoadedAt  time.Time `json:"loaded_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body, err := json.MarshalIndent(healthResponse{
		Status:    "ok",
		Version:   version.Get().Short(),
		Documents: len(s.store.Published()),
		LoadedAt:  s.store.LoadedAt(),
	}, "", "  ")
	if err != nil {
		http.Error(w, "Failed to marshal health status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", pageCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// render wraps body in the document shell. The nonce comes from the header
// the pipeline forwarded; inline scripts carry it through templ's context.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, meta site.Metadata, body templ.Component) {
	ctx := r.Context()
	if nonce := security.NonceFromRequest(r, s.logger); nonce != "" {
		ctx = templ.WithNonce(ctx, nonce)
	}

	page := layout.Page{
		Site:        s.site,
		Meta:        meta,
		Path:        r.URL.Path,
		Theme:       theme.FromRequest(r),
		Environment: s.config.Environment(),
		LiveReload:  s.hub != nil,
	}

	w.Header().Set("Cache-Control", pageCacheControl)
	templ.Handler(layout.Document(page, body),
		templ.WithStatus(status),
		templ.WithErrorHandler(s.renderError),
	).ServeHTTP(w, r.WithContext(ctx))
}

func (s *Server) renderError(_ *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Error(r.Context(), err, "Failed to render page", "path", r.URL.Path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	})
}
