// Package content loads the legal documents under the content directory.
//
// A document is a Markdown or MDX file with YAML front matter:
//
//	---
//	title: Terms of Service
//	description: The rules for using SupaFox.
//	date: 2024-05-01
//	published: true
//	---
//
// Its path relative to the content directory, without the extension, is the
// flattened path: legal/terms.mdx becomes Slug "/legal/terms" and
// SlugAsParams "terms".
package content

import (
	"bytes"
	"path"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/supafox/supafox/internal/errors"
)

// DateLayout is the front matter date format.
const DateLayout = "2006-01-02"

// Document is a parsed and rendered legal document.
type Document struct {
	Title       string
	Description string
	Date        time.Time
	Published   bool

	// SourcePath is the file path relative to the content directory.
	SourcePath   string
	Slug         string
	SlugAsParams string

	// HTML is the sanitised, post-processed body.
	HTML string
}

// Label is a human title for the document's slug, used in breadcrumbs.
func (d *Document) Label() string {
	return HumanizeSlug(d.SlugAsParams)
}

// frontMatter mirrors the YAML header. Pointers distinguish a missing field
// from a zero value.
type frontMatter struct {
	Title       *string `yaml:"title"`
	Description *string `yaml:"description"`
	Date        *string `yaml:"date"`
	Published   *bool   `yaml:"published"`
}

var fence = []byte("---")

// splitFrontMatter separates the YAML header from the body. The header must
// open on the first line.
func splitFrontMatter(src []byte) (header, body []byte, ok bool) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))

	first, rest, found := bytes.Cut(src, []byte("\n"))
	if !found || !bytes.Equal(bytes.TrimRight(first, " \t"), fence) {
		return nil, src, false
	}

	for offset := 0; offset <= len(rest); {
		line, after, more := bytes.Cut(rest[offset:], []byte("\n"))
		if bytes.Equal(bytes.TrimRight(line, " \t"), fence) {
			return rest[:offset], after, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return nil, src, false
}

// parseFrontMatter decodes and checks the header of the document at file.
func parseFrontMatter(file string, header []byte) (*Document, error) {
	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, errors.NewContentError("FRONT_MATTER_INVALID", "front matter is not valid YAML", err).
			WithFile(file)
	}

	var missing []string
	if fm.Title == nil || strings.TrimSpace(*fm.Title) == "" {
		missing = append(missing, "title")
	}
	if fm.Description == nil || strings.TrimSpace(*fm.Description) == "" {
		missing = append(missing, "description")
	}
	if fm.Date == nil || strings.TrimSpace(*fm.Date) == "" {
		missing = append(missing, "date")
	}
	if fm.Published == nil {
		missing = append(missing, "published")
	}
	if len(missing) > 0 {
		return nil, errors.NewContentError("FRONT_MATTER_MISSING", "required front matter fields are missing", nil).
			WithFile(file).
			WithContext("fields", strings.Join(missing, ","))
	}

	date, err := parseDate(*fm.Date)
	if err != nil {
		return nil, errors.NewContentError("FRONT_MATTER_DATE", "date must be YYYY-MM-DD", err).
			WithFile(file).
			WithContext("date", *fm.Date)
	}

	return &Document{
		Title:       strings.TrimSpace(*fm.Title),
		Description: strings.TrimSpace(*fm.Description),
		Date:        date,
		Published:   *fm.Published,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err == nil {
		return t, nil
	}
	if full, ferr := time.Parse(time.RFC3339, s); ferr == nil {
		return full.UTC(), nil
	}
	return time.Time{}, err
}

// flattenedPath strips the extension and a trailing "index" segment.
func flattenedPath(rel string) string {
	rel = path.Clean(strings.TrimPrefix(rel, "/"))
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	if path.Base(rel) == "index" {
		rel = path.Dir(rel)
	}
	return rel
}

func slugs(rel string) (slug, slugAsParams string) {
	flat := flattenedPath(rel)
	slug = "/" + flat
	if _, params, ok := strings.Cut(flat, "/"); ok {
		slugAsParams = params
	}
	return slug, slugAsParams
}

// HumanizeSlug turns "privacy-policy" into "Privacy Policy". Nested slugs
// use their last segment.
func HumanizeSlug(slug string) string {
	slug = strings.Trim(slug, "/")
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}
	return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
}
