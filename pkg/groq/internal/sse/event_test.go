// ABOUTME: Tests for SSE line classification
// ABOUTME: Covers data lines, the [DONE] sentinel, comments, and unrecognized prefixes

package sse

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantKind Kind
		wantData string
	}{
		{
			name:     "data line",
			line:     `data: {"choices":[]}`,
			wantKind: KindData,
			wantData: `{"choices":[]}`,
		},
		{
			name:     "done sentinel",
			line:     "data: [DONE]",
			wantKind: KindDone,
		},
		{
			name:     "blank line",
			line:     "",
			wantKind: KindIgnored,
		},
		{
			name:     "comment line",
			line:     ": keep-alive",
			wantKind: KindIgnored,
		},
		{
			name:     "unrecognized field",
			line:     "event: ping",
			wantKind: KindIgnored,
		},
		{
			name:     "data without space after colon is not a data line",
			line:     "data:{}",
			wantKind: KindIgnored,
		},
		{
			name:     "empty payload",
			line:     "data: ",
			wantKind: KindData,
			wantData: "",
		},
		{
			name:     "done embedded in larger payload stays data",
			line:     "data: [DONE] trailing",
			wantKind: KindData,
			wantData: "[DONE] trailing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ev := Classify(tt.line)
			if ev.Kind != tt.wantKind {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.line, ev.Kind, tt.wantKind)
			}
			if ev.Data != tt.wantData {
				t.Errorf("Classify(%q).Data = %q, want %q", tt.line, ev.Data, tt.wantData)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	t.Parallel()

	line := `data: {"choices":[{"delta":{"content":"hi"}}]}`
	first := Classify(line)
	second := Classify(line)
	if first != second {
		t.Errorf("Classify is not idempotent: %+v vs %+v", first, second)
	}
}
