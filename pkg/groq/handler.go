// ABOUTME: Consumer capability invoked once per extracted text fragment
// ABOUTME: FragmentHandlerFunc adapts plain functions; Collector accumulates for callers

package groq

import "strings"

// FragmentHandler consumes text fragments as they arrive. HandleFragment
// is called synchronously on the caller's goroutine, strictly in stream
// order, one fragment at a time; it directly gates stream progress and
// must not block indefinitely.
type FragmentHandler interface {
	HandleFragment(fragment string)
}

// FragmentHandlerFunc adapts an ordinary function to FragmentHandler.
type FragmentHandlerFunc func(fragment string)

// HandleFragment calls f(fragment).
func (f FragmentHandlerFunc) HandleFragment(fragment string) {
	f(fragment)
}

// Collector is a FragmentHandler that accumulates fragments in memory.
type Collector struct {
	b strings.Builder
}

// HandleFragment appends the fragment.
func (c *Collector) HandleFragment(fragment string) {
	c.b.WriteString(fragment)
}

// String returns everything collected so far.
func (c *Collector) String() string {
	return c.b.String()
}
