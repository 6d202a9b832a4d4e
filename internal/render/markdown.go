// ABOUTME: Markdown rendering for terminal output via glamour
// ABOUTME: Width-aware word wrap with a render cache keyed by content hash

package render

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown for the terminal. Results are cached by
// content hash and width, so re-rendering the same reply is free.
type Markdown struct {
	cache map[string]string
}

// NewMarkdown creates a renderer with an empty cache.
func NewMarkdown() *Markdown {
	return &Markdown{cache: make(map[string]string)}
}

// Render returns the terminal-styled rendering of md wrapped to width.
// On any renderer failure the raw text comes back unchanged.
func (r *Markdown) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[key] = rendered
	return rendered
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
