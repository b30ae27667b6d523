// Package content serves the storefront's static support pages (shipping
// info, returns, about) from local markdown files with YAML front matter,
// and provides the shared markdown-to-sanitized-HTML pipeline.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates no page exists for the requested slug.
var ErrNotFound = errors.New("content: page not found")

// Page is a rendered static page.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	UpdatedAt string `yaml:"updated_at"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts markdown to sanitized HTML. Also used for product
// descriptions coming from the store API, which are untrusted input.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("content: render markdown: %w", err)
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// Store loads pages from a directory, caching parsed results.
type Store struct {
	dir string

	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]cacheEntry
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// NewStore builds a page store rooted at dir.
func NewStore(dir string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{
		dir:   dir,
		ttl:   ttl,
		items: map[string]cacheEntry{},
	}
}

// Get returns the page for a slug, reading and rendering the markdown file
// on a cache miss.
func (s *Store) Get(slug string) (Page, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if !slugPattern.MatchString(slug) {
		return Page{}, ErrNotFound
	}

	s.mu.RLock()
	entry, ok := s.items[slug]
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.page, nil
	}

	page, err := s.load(slug)
	if err != nil {
		return Page{}, err
	}

	s.mu.Lock()
	s.items[slug] = cacheEntry{page: page, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return page, nil
}

func (s *Store) load(slug string) (Page, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("content: read %s: %w", slug, err)
	}

	front, body := splitFrontMatter(string(raw))
	var fm frontMatter
	if front != "" {
		if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
			return Page{}, fmt.Errorf("content: front matter %s: %w", slug, err)
		}
	}

	rendered, err := RenderMarkdown(body)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(fm.Title),
		Summary: strings.TrimSpace(fm.Summary),
		Body:    rendered,
	}
	if page.Title == "" {
		page.Title = titleFromSlug(slug)
	}
	if ts := strings.TrimSpace(fm.UpdatedAt); ts != "" {
		if t, err := time.Parse("2006-01-02", ts); err == nil {
			page.UpdatedAt = t
		}
	}
	return page, nil
}

func splitFrontMatter(raw string) (front, body string) {
	const marker = "---"
	trimmed := strings.TrimLeft(raw, "\uFEFF\n\r")
	if !strings.HasPrefix(trimmed, marker) {
		return "", raw
	}
	rest := trimmed[len(marker):]
	idx := strings.Index(rest, "\n"+marker)
	if idx < 0 {
		return "", raw
	}
	front = strings.TrimSpace(rest[:idx])
	body = rest[idx+len(marker)+1:]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return front, body
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
