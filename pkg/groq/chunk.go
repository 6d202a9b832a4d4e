// ABOUTME: Wire types and delta extraction for streaming chat completion chunks
// ABOUTME: Tolerates malformed or irrelevant payloads without aborting the stream

package groq

import "encoding/json"

// chatCompletionChunk is the JSON payload of one data event.
type chatCompletionChunk struct {
	ID      string        `json:"id"`
	Model   string        `json:"model"`
	Choices []chunkChoice `json:"choices"`
	Usage   *Usage        `json:"usage,omitempty"`
	XGroq   *xGroq        `json:"x_groq,omitempty"`
}

type chunkChoice struct {
	Index        int        `json:"index"`
	Delta        chunkDelta `json:"delta"`
	FinishReason string     `json:"finish_reason"`
}

type chunkDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// xGroq carries Groq-specific trailing metadata; usage arrives here on
// the final chunk of a stream.
type xGroq struct {
	ID    string `json:"id"`
	Usage *Usage `json:"usage,omitempty"`
}

// parseChunk decodes a data payload. Malformed JSON yields (nil, false);
// the stream continues. Pure function, safe to call repeatedly on the
// same payload.
func parseChunk(payload string) (*chatCompletionChunk, bool) {
	var chunk chatCompletionChunk
	if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
		return nil, false
	}
	return &chunk, true
}

// firstContentDelta extracts choices[0].delta.content if present and
// non-empty. Parallel choices beyond the first are out of scope.
func firstContentDelta(chunk *chatCompletionChunk) (string, bool) {
	if chunk == nil || len(chunk.Choices) == 0 {
		return "", false
	}
	content := chunk.Choices[0].Delta.Content
	if content == "" {
		return "", false
	}
	return content, true
}

// applyChunkMeta folds non-delta chunk fields into the completion summary.
func applyChunkMeta(comp *Completion, chunk *chatCompletionChunk) {
	if chunk.ID != "" {
		comp.ID = chunk.ID
	}
	if chunk.Model != "" {
		comp.Model = chunk.Model
	}
	if len(chunk.Choices) > 0 && chunk.Choices[0].FinishReason != "" {
		comp.FinishReason = chunk.Choices[0].FinishReason
	}
	if chunk.Usage != nil {
		comp.Usage = *chunk.Usage
	}
	if chunk.XGroq != nil && chunk.XGroq.Usage != nil {
		comp.Usage = *chunk.XGroq.Usage
	}
}
