// ABOUTME: Line decoder for Server-Sent-Events streams read from an io.Reader
// ABOUTME: Reassembles lines across partial reads; bounded buffer, CRLF normalization

package sse

import (
	"bufio"
	"errors"
	"io"
)

// DefaultMaxLineSize bounds the line accumulation buffer (1MB).
const DefaultMaxLineSize = 1024 * 1024

const initialBufSize = 64 * 1024

// ErrLineTooLong is returned when a single line exceeds the scanner's
// configured maximum size. The stream cannot be resumed after it.
var ErrLineTooLong = errors.New("sse: line exceeds maximum size")

// Scanner produces logical lines from a byte stream. Lines are delimited
// by '\n' with any trailing '\r' stripped. A partial line at end of stream
// is delivered as a final line before io.EOF; chunked HTTP bodies may close
// without a trailing newline on the last event.
//
// A Scanner is consumed forward-only, exactly once.
type Scanner struct {
	scanner *bufio.Scanner
}

// NewScanner creates a line scanner over r. maxLineSize caps the internal
// buffer; values <= 0 select DefaultMaxLineSize.
func NewScanner(r io.Reader, maxLineSize int) *Scanner {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}
	initial := initialBufSize
	if initial > maxLineSize {
		initial = maxLineSize
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initial), maxLineSize)
	return &Scanner{scanner: s}
}

// Next returns the next logical line. It returns io.EOF on clean end of
// stream, ErrLineTooLong when a line overflows the buffer, and the
// underlying read error otherwise.
func (s *Scanner) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", ErrLineTooLong
		}
		return "", err
	}
	return "", io.EOF
}
