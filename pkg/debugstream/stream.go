// Package debugstream renders values into a nested, bracketed text tree for
// debugging output. Containers open a branch that is indented one level
// deeper; inline mode keeps everything on one line.
//
// A Stream is not safe for concurrent use.
package debugstream

import (
	"errors"
	"strings"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// ErrUnbalancedBranch is reported when BranchEnd is called with no open branch.
var ErrUnbalancedBranch = errors.New("debugstream: branch end without matching start")

// Formatter is implemented by types that write their own fields into the
// stream. The stream wraps the output in braces.
type Formatter interface {
	DebugStream(s *Stream)
}

// Stream accumulates rendered text.
type Stream struct {
	Inline bool // render on one line
	Indent int  // spaces per depth level

	buf   strings.Builder
	depth int
	err   error
}

// New returns an empty stream using DefaultIndent.
func New() *Stream {
	return &Stream{Indent: DefaultIndent}
}

// String returns everything written so far.
func (s *Stream) String() string {
	return s.buf.String()
}

// Err returns the first error recorded while writing.
func (s *Stream) Err() error {
	return s.err
}

// Depth returns the current nesting depth.
func (s *Stream) Depth() int {
	return s.depth
}

func (s *Stream) tabSpace() {
	s.buf.WriteString(strings.Repeat(" ", s.depth*s.Indent))
}

// WriteByte writes c. A newline is followed by indentation for the current
// depth.
func (s *Stream) WriteByte(c byte) error {
	s.buf.WriteByte(c)
	if c == '\n' {
		s.tabSpace()
	}
	return nil
}

// WriteString writes str byte by byte so embedded newlines are indented.
func (s *Stream) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		_ = s.WriteByte(str[i])
	}
	return len(str), nil
}

// BranchStart writes the opening bracket c and, unless inline, moves to a
// new line one level deeper.
func (s *Stream) BranchStart(c byte) {
	_ = s.WriteByte(c)
	if !s.Inline {
		s.buf.WriteByte('\n')
		s.depth++
		s.tabSpace()
	}
}

// BranchEnd moves back one level, unless inline, and writes the closing
// bracket c. Ending a branch at depth 0 records ErrUnbalancedBranch.
func (s *Stream) BranchEnd(c byte) {
	if !s.Inline {
		s.buf.WriteByte('\n')
		if s.depth == 0 {
			if s.err == nil {
				s.err = ErrUnbalancedBranch
			}
		} else {
			s.depth--
		}
		s.tabSpace()
	}
	_ = s.WriteByte(c)
}

// SetInline sets inline mode and returns the stream for chaining.
func (s *Stream) SetInline(inline bool) *Stream {
	s.Inline = inline
	return s
}

// SetIndent sets the indentation width and returns the stream for chaining.
func (s *Stream) SetIndent(n int) *Stream {
	s.Indent = n
	return s
}

// ScopedInline sets inline mode and returns a function restoring the
// previous setting:
//
//	defer s.ScopedInline(true)()
func (s *Stream) ScopedInline(inline bool) (restore func()) {
	prev := s.Inline
	s.Inline = inline
	return func() { s.Inline = prev }
}

// ScopedIndent sets the indentation width and returns a function restoring
// the previous width.
func (s *Stream) ScopedIndent(n int) (restore func()) {
	prev := s.Indent
	s.Indent = n
	return func() { s.Indent = prev }
}

// Option configures Sprint.
type Option func(*Stream)

// WithInline renders on a single line.
func WithInline(inline bool) Option {
	return func(s *Stream) { s.Inline = inline }
}

// WithIndent sets the indentation width.
func WithIndent(n int) Option {
	return func(s *Stream) { s.Indent = n }
}

// Sprint renders v with a fresh stream.
func Sprint(v any, opts ...Option) string {
	s := New()
	for _, opt := range opts {
		opt(s)
	}
	return s.Write(v).String()
}
