// ABOUTME: Error kinds surfaced by the streaming client
// ABOUTME: Sentinels for precondition failures; StatusError for non-2xx responses

package groq

import (
	"errors"
	"fmt"

	"github.com/ronniebasak/ffai/pkg/groq/internal/sse"
)

var (
	// ErrMissingAPIKey means no credential was available; no call is attempted.
	ErrMissingAPIKey = errors.New("groq: missing API key")

	// ErrNoMessages means the request carried an empty conversation.
	ErrNoMessages = errors.New("groq: chat request has no messages")

	// ErrLineTooLong means a stream line overflowed the decoder's buffer
	// and the stream was aborted.
	ErrLineTooLong = sse.ErrLineTooLong
)

// StatusError reports a non-2xx HTTP response. The body is never parsed
// as an event stream; up to 4KB of it is captured for diagnostics.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("groq: API error (status %d)", e.Code)
	}
	return fmt.Sprintf("groq: API error (status %d): %s", e.Code, e.Body)
}
