// ABOUTME: Builds the JSON request body for the chat completions endpoint
// ABOUTME: Structured serialization with stable field order; stop is null when absent

package groq

import "encoding/json"

// wireRequest is the exact body shape of the chat completions endpoint.
// Field order is the serialization order; every field is always emitted
// so request bodies are deterministic and easy to assert on.
type wireRequest struct {
	Messages            []Message `json:"messages"`
	Model               string    `json:"model"`
	Temperature         float64   `json:"temperature"`
	MaxCompletionTokens int       `json:"max_completion_tokens"`
	TopP                float64   `json:"top_p"`
	Stream              bool      `json:"stream"`
	Stop                *string   `json:"stop"`
}

// buildRequestBody serializes a ChatRequest. Streaming is always forced
// on; this client has no non-streaming mode. Message content is escaped
// by the JSON encoder, never interpolated by hand.
func buildRequestBody(req ChatRequest) ([]byte, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	return json.Marshal(wireRequest{
		Messages:            req.Messages,
		Model:               model,
		Temperature:         req.Temperature,
		MaxCompletionTokens: req.MaxTokens,
		TopP:                req.TopP,
		Stream:              true,
		Stop:                req.Stop,
	})
}
