package format

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText strips markup from an HTML fragment, collapsing whitespace.
// Used for product-card snippets and meta descriptions derived from
// sanitized description HTML.
func PlainText(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(tokenizer.Token().Data)
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Excerpt truncates plain text extracted from HTML to max runes, appending
// an ellipsis on a word boundary when truncation occurs.
func Excerpt(fragment string, max int) string {
	text := PlainText(fragment)
	if max <= 0 || len([]rune(text)) <= max {
		return text
	}
	runes := []rune(text)[:max]
	cut := string(runes)
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " .,;:") + "…"
}
