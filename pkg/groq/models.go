// ABOUTME: Model catalog access for the Groq API
// ABOUTME: Lists available models; shares auth and error discipline with the chat client

package groq

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultModel is used when a ChatRequest leaves Model empty.
const DefaultModel = "llama-3.3-70b-versatile"

const modelsPath = "/openai/v1/models"

// Model describes one catalog entry as returned by the models endpoint.
type Model struct {
	ID            string `json:"id"`
	Object        string `json:"object"`
	Created       int64  `json:"created"`
	OwnedBy       string `json:"owned_by"`
	Active        bool   `json:"active"`
	ContextWindow int    `json:"context_window"`
}

type modelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// ListModels fetches the model catalog. Non-2xx responses surface as
// *StatusError, same as the chat endpoint.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c.logger.Debugf("http: GET %s%s", c.BaseURL(), modelsPath)
	resp, err := c.http.Get(ctx, modelsPath)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var list modelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding model list: %w", err)
	}
	return list.Data, nil
}
