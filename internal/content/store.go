package content

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/logging"
)

// LegalDir is the collection directory inside the content root.
const LegalDir = "legal"

// Store holds the loaded documents. Readers never block each other; Reload
// swaps the whole set atomically and keeps the previous set on failure.
type Store struct {
	fsys     fs.FS
	renderer *Renderer
	logger   logging.Logger

	mu       sync.RWMutex
	docs     []*Document
	bySlug   map[string]*Document
	loadedAt time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithRenderer replaces the default Markdown pipeline.
func WithRenderer(r *Renderer) Option {
	return func(s *Store) { s.renderer = r }
}

// WithLogger sets the store logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore reads documents from dir on disk. Call Reload to load them.
func NewStore(dir string, opts ...Option) *Store {
	return NewStoreFS(os.DirFS(dir), opts...)
}

// NewStoreFS reads documents from fsys.
func NewStoreFS(fsys fs.FS, opts ...Option) *Store {
	s := &Store{fsys: fsys, bySlug: map[string]*Document{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = NewRenderer(nil)
	}
	if s.logger == nil {
		s.logger = logging.NopLogger{}
	}
	s.logger = s.logger.WithComponent("content")
	return s
}

// Reload parses every document. If any document is invalid the error names
// the first bad file and the current set is kept.
func (s *Store) Reload(ctx context.Context) error {
	start := time.Now()
	docs, err := Load(ctx, s.fsys, s.renderer)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to load legal documents")
		return err
	}

	bySlug := make(map[string]*Document, len(docs))
	for _, d := range docs {
		bySlug[d.SlugAsParams] = d
	}

	s.mu.Lock()
	s.docs = docs
	s.bySlug = bySlug
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info(ctx, "Loaded legal documents",
		"documents", len(docs),
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// All returns every document, published or not, newest first.
func (s *Store) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Document(nil), s.docs...)
}

// Published returns the published documents, newest first.
func (s *Store) Published() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		if d.Published {
			out = append(out, d)
		}
	}
	return out
}

// Find returns the published document for a slug such as "terms".
func (s *Store) Find(slugAsParams string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.bySlug[strings.Trim(slugAsParams, "/")]
	if !ok || !d.Published {
		return nil, false
	}
	return d, true
}

// LoadedAt is when the current set was loaded.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Load parses legal/**/*.md{,x} under fsys, sorted by date descending then
// slug. A missing legal directory yields no documents.
func Load(ctx context.Context, fsys fs.FS, renderer *Renderer) ([]*Document, error) {
	if _, err := fs.Stat(fsys, LegalDir); stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var docs []*Document
	seen := map[string]string{}

	err := fs.WalkDir(fsys, LegalDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if p != LegalDir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !isDocument(p) {
			return nil
		}

		doc, err := loadDocument(fsys, p, renderer)
		if err != nil {
			return err
		}
		if prev, dup := seen[doc.Slug]; dup {
			return errors.NewContentError("DUPLICATE_SLUG", "two documents share a slug", nil).
				WithFile(p).
				WithContext("other", prev).
				WithContext("slug", doc.Slug)
		}
		seen[doc.Slug] = p
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return nil, err
		}
		return nil, errors.NewContentError("CONTENT_READ", "failed to read content directory", err)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if !docs[i].Date.Equal(docs[j].Date) {
			return docs[i].Date.After(docs[j].Date)
		}
		return docs[i].Slug < docs[j].Slug
	})
	return docs, nil
}

func isDocument(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".mdx":
		return !strings.HasPrefix(path.Base(p), ".")
	default:
		return false
	}
}

func loadDocument(fsys fs.FS, p string, renderer *Renderer) (*Document, error) {
	src, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, errors.NewContentError("CONTENT_READ", "failed to read document", err).WithFile(p)
	}

	header, body, ok := splitFrontMatter(src)
	if !ok {
		return nil, errors.NewContentError("FRONT_MATTER_MISSING", "document has no front matter", nil).WithFile(p)
	}

	doc, err := parseFrontMatter(p, header)
	if err != nil {
		return nil, err
	}

	html, err := renderer.Render(body, strings.EqualFold(path.Ext(p), ".mdx"))
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr.WithFile(p)
		}
		return nil, err
	}

	doc.SourcePath = p
	doc.Slug, doc.SlugAsParams = slugs(p)
	doc.HTML = html
	return doc, nil
}
