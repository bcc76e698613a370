package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeHTMLStripsScripts(t *testing.T) {
	out := SanitizeHTML(`<p onclick="evil()">ok</p><script>evil()</script>`)
	assert.Contains(t, out, "<p>ok</p>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
}

func TestRenderMarkdownProducesSanitizedHTML(t *testing.T) {
	out, err := RenderMarkdown("## Notice\n\n[link](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, `href="https://example.com"`)
}

func TestExcerptFromHTML(t *testing.T) {
	out := ExcerptFromHTML("<p>one   two</p> <p>three</p>", 0)
	assert.Equal(t, "one two three", out)

	truncated := ExcerptFromHTML("<p>abcdefghij</p>", 5)
	assert.Equal(t, "abcde…", truncated)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "cultural-events-2026", slugify("  Cultural Events, 2026! "))
	assert.Equal(t, "", slugify("!!!"))
}
