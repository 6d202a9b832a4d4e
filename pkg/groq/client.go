// ABOUTME: Streaming chat completion client for the Groq OpenAI-compatible API
// ABOUTME: One blocking request/response cycle per call; fragments delivered in order

package groq

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ronniebasak/ffai/pkg/groq/internal/httputil"
	"github.com/ronniebasak/ffai/pkg/groq/internal/sse"
)

const (
	// DefaultBaseURL is the public Groq API endpoint.
	DefaultBaseURL = "https://api.groq.com"

	chatCompletionPath = "/openai/v1/chat/completions"

	maxErrorBody = 4096
)

// Client issues streaming chat completion requests. The credential is
// read-only after construction, so a single Client is safe for
// concurrent calls; each call owns its own transport session and
// decoder buffer.
type Client struct {
	http        *httputil.Client
	apiKey      string
	logger      Logger
	maxLineSize int
}

// Option configures a Client.
type Option func(*Client)

// WithLogger injects a diagnostic sink. The default discards everything.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxLineSize overrides the SSE decoder's line buffer bound.
func WithMaxLineSize(n int) Option {
	return func(c *Client) { c.maxLineSize = n }
}

// New creates a client. An empty apiKey falls back to GROQ_API_KEY; an
// empty baseURL selects DefaultBaseURL. The base URL is normalized so a
// value pasted with a trailing /openai/v1 still works.
func New(apiKey, baseURL string, opts ...Option) *Client {
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = httputil.NormalizeBaseURL(baseURL)

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}

	c := &Client{
		http:        httputil.NewClient(baseURL, headers),
		apiKey:      apiKey,
		logger:      nopLogger{},
		maxLineSize: sse.DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL this client targets.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// StreamChat performs one streaming chat completion pass: build the
// request, send it, decode the SSE response, and invoke handler once per
// extracted fragment, in order, before the next line is decoded. It
// blocks until the stream ends via the [DONE] sentinel, a clean
// connection close, or a failure.
//
// Cancellation is caller-driven through ctx; an aborted connection
// surfaces as a stream read error. A nil handler discards fragments.
func (c *Client) StreamChat(ctx context.Context, req ChatRequest, handler FragmentHandler) (*Completion, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if len(req.Messages) == 0 {
		return nil, ErrNoMessages
	}
	if handler == nil {
		handler = FragmentHandlerFunc(func(string) {})
	}

	body, err := buildRequestBody(req)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	c.logger.Debugf("http: POST %s%s model=%s bytes=%d", c.BaseURL(), chatCompletionPath, req.Model, len(body))
	resp, err := c.http.Post(ctx, chatCompletionPath, body)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()
	c.logger.Debugf("http: POST %s%s → %d", c.BaseURL(), chatCompletionPath, resp.StatusCode)

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return c.consumeStream(resp.Body, handler)
}

// consumeStream drives the line decoder over the response body until the
// sentinel, end of stream, or a fatal error. Malformed events are logged
// and skipped; everything else aborts the pass.
func (c *Client) consumeStream(r io.Reader, handler FragmentHandler) (*Completion, error) {
	scanner := sse.NewScanner(r, c.maxLineSize)
	var comp Completion

	for {
		line, err := scanner.Next()
		if err != nil {
			if err == io.EOF {
				// Connection closed without a sentinel: conventional
				// stream end for SSE over chunked HTTP.
				return &comp, nil
			}
			if errors.Is(err, sse.ErrLineTooLong) {
				return nil, err
			}
			return nil, fmt.Errorf("reading stream: %w", err)
		}

		ev := sse.Classify(line)
		switch ev.Kind {
		case sse.KindIgnored:
			continue
		case sse.KindDone:
			// Stop immediately; later lines may be buffered but are
			// never consumed.
			return &comp, nil
		}

		chunk, ok := parseChunk(ev.Data)
		if !ok {
			c.logger.Debugf("stream: skipping malformed event: %.80s", ev.Data)
			continue
		}
		if fragment, ok := firstContentDelta(chunk); ok {
			handler.HandleFragment(fragment)
			comp.Content += fragment
		}
		applyChunkMeta(&comp, chunk)
	}
}

// checkStatus converts a non-2xx response into a StatusError, capturing
// a bounded slice of the body for diagnostics.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(errBody))}
}
