// ABOUTME: Core chat types: Message, ChatRequest, Completion, Usage
// ABOUTME: Shared between the streaming client and the model catalog

package groq

// Role identifies who authored a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message. Caller-provided and immutable.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewMessage creates a message with the given role and content.
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// ChatRequest describes one streaming chat completion call. It is
// constructed immediately before the call and discarded after
// serialization; the client never holds on to it.
type ChatRequest struct {
	// Messages is the ordered conversation. Must be non-empty.
	Messages []Message
	// Model is the model ID; DefaultModel when empty.
	Model string
	// Temperature is the sampling temperature, serialized as-is.
	Temperature float64
	// MaxTokens caps completion length (max_completion_tokens on the wire).
	MaxTokens int
	// TopP is the nucleus sampling parameter.
	TopP float64
	// Stop is an optional stop sequence. nil serializes to JSON null;
	// a set value is sent verbatim.
	Stop *string
}

// Usage tracks token consumption as reported by the final stream chunk.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the accumulated result of one streaming pass: the full
// assistant text plus whatever metadata the stream reported. Fragments
// are still delivered incrementally through the FragmentHandler; this is
// the summary returned once the stream ends.
type Completion struct {
	ID           string
	Model        string
	Content      string
	FinishReason string
	Usage        Usage
}
