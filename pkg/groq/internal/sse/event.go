// ABOUTME: Classifies decoded SSE lines into data events, the [DONE] sentinel, or noise
// ABOUTME: Blank lines, comments, and unrecognized field prefixes are ignored

package sse

import "strings"

// Kind tags the classification of a single SSE line.
type Kind int

const (
	// KindIgnored marks blank lines, ": comment" lines, and any prefix
	// other than "data: ". They separate or annotate events but carry
	// no payload here.
	KindIgnored Kind = iota
	// KindData marks a payload-bearing "data: " line.
	KindData
	// KindDone marks the "data: [DONE]" termination sentinel.
	KindDone
)

// Event is the classification of one line. It is transient: created and
// consumed within a single streaming pass.
type Event struct {
	Kind Kind
	Data string // payload after the "data: " prefix; set only for KindData
}

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// Classify interprets a single decoded line. The [DONE] sentinel is
// reclassified before any JSON parsing happens downstream.
func Classify(line string) Event {
	if !strings.HasPrefix(line, dataPrefix) {
		return Event{Kind: KindIgnored}
	}
	payload := line[len(dataPrefix):]
	if payload == doneSentinel {
		return Event{Kind: KindDone}
	}
	return Event{Kind: KindData, Data: payload}
}
