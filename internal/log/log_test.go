// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and captured output

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelInfo)
	Debug("should be suppressed: %s", "x")

	if buf.Len() != 0 {
		t.Errorf("debug output emitted at info level: %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelDebug)
	Debug("emit: %d", 42)

	got := buf.String()
	if !strings.HasPrefix(got, "[DEBUG] ") || !strings.Contains(got, "emit: 42") {
		t.Errorf("unexpected debug output: %q", got)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelError)
	Error("boom: %v", "oops")

	if !strings.Contains(buf.String(), "boom: oops") {
		t.Errorf("error output missing: %q", buf.String())
	}
}

func TestLevelPrefixes(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelDebug)
	Debug("a")
	Info("b")
	Warn("c")
	Error("d")

	got := buf.String()
	for _, want := range []string{"[DEBUG] a", "[INFO] b", "[WARN] c", "[ERROR] d"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
