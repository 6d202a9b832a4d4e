// ABOUTME: Tests for the markdown renderer wrapper
// ABOUTME: Empty input, non-empty output, and cache hits

package render

import "testing"

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	r := NewMarkdown()
	if got := r.Render("", 80); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRenderProducesOutput(t *testing.T) {
	t.Parallel()

	r := NewMarkdown()
	got := r.Render("# Title\n\nSome **bold** text.", 80)
	if got == "" {
		t.Error("Render returned empty output for non-empty markdown")
	}
}

func TestRenderCacheStable(t *testing.T) {
	t.Parallel()

	r := NewMarkdown()
	md := "a *stable* fragment"
	first := r.Render(md, 72)
	second := r.Render(md, 72)
	if first != second {
		t.Errorf("cached render differs:\n%q\n%q", first, second)
	}

	// Different width is a different cache entry, not a collision.
	if len(r.cache) != 1 {
		t.Errorf("cache has %d entries, want 1", len(r.cache))
	}
	r.Render(md, 40)
	if len(r.cache) != 2 {
		t.Errorf("cache has %d entries after width change, want 2", len(r.cache))
	}
}
