package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns user-written markdown into HTML that is safe to embed.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds a renderer with GFM extensions and a UGC sanitizing policy.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{md: md, policy: policy}
}

// ToHTML converts markdown and sanitizes the output.
func (r *Renderer) ToHTML(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// MustHTML is ToHTML for presentation paths: on conversion failure the text is
// escaped and returned as a paragraph.
func (r *Renderer) MustHTML(markdown string) string {
	out, err := r.ToHTML(markdown)
	if err != nil {
		return "<p>" + bluemonday.StrictPolicy().Sanitize(markdown) + "</p>"
	}
	return out
}
