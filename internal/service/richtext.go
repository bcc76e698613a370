package service

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
	textStripper  = bluemonday.StrictPolicy()
)

// SanitizeHTML strips scriptable markup from admin-authored rich HTML before
// it reaches the store.
func SanitizeHTML(input string) string {
	return htmlSanitizer.Sanitize(input)
}

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// ExcerptFromHTML derives a plain-text excerpt of at most limit runes.
func ExcerptFromHTML(content string, limit int) string {
	plain := textStripper.Sanitize(content)
	plain = strings.Join(strings.Fields(plain), " ")
	if plain == "" {
		return ""
	}
	if limit <= 0 || utf8.RuneCountInString(plain) <= limit {
		return plain
	}
	runes := []rune(plain)
	return string(runes[:limit]) + "…"
}
