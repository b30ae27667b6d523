package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, slug, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(body), 0o644))
}

func TestGetParsesFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "shipping-info", `---
title: Shipping Info
summary: How your order ships.
updated_at: 2026-07-14
---

## Processing

Orders ship the **next** business day.
`)

	s := NewStore(dir, time.Minute)
	page, err := s.Get("shipping-info")
	require.NoError(t, err)

	assert.Equal(t, "shipping-info", page.Slug)
	assert.Equal(t, "Shipping Info", page.Title)
	assert.Equal(t, "How your order ships.", page.Summary)
	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), page.UpdatedAt)

	body := string(page.Body)
	assert.Contains(t, body, "<h2")
	assert.Contains(t, body, "<strong>next</strong>")
}

func TestGetWithoutFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "store-hours", "We are open every day.\n")

	s := NewStore(dir, time.Minute)
	page, err := s.Get("store-hours")
	require.NoError(t, err)

	assert.Equal(t, "Store Hours", page.Title)
	assert.True(t, page.UpdatedAt.IsZero())
	assert.Contains(t, string(page.Body), "We are open every day.")
}

func TestGetUnknownSlug(t *testing.T) {
	s := NewStore(t.TempDir(), time.Minute)
	_, err := s.Get("no-such-page")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRejectsBadSlugs(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "about", "hi")

	s := NewStore(dir, time.Minute)
	for _, slug := range []string{"../about", "about.md", "About!", "-about", "a--b", ""} {
		_, err := s.Get(slug)
		assert.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}

	// case and surrounding whitespace are normalized, not rejected
	page, err := s.Get("  ABOUT ")
	require.NoError(t, err)
	assert.Equal(t, "about", page.Slug)
}

func TestGetCachesPages(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "about", "first version")

	s := NewStore(dir, time.Minute)
	page, err := s.Get("about")
	require.NoError(t, err)
	assert.Contains(t, string(page.Body), "first version")

	// within the TTL the cached copy is served even after a rewrite
	writePage(t, dir, "about", "second version")
	page, err = s.Get("about")
	require.NoError(t, err)
	assert.Contains(t, string(page.Body), "first version")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html, err := RenderMarkdown("Safe **text**\n\n<script>alert(1)</script>\n\n<a href=\"javascript:x()\">link</a>")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<strong>text</strong>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, strings.ToLower(out), "javascript:")
}

func TestRenderMarkdownTables(t *testing.T) {
	html, err := RenderMarkdown("| a | b |\n| --- | --- |\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table")
}
