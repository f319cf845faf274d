// Package scan implements quote-aware delimiter scanning over a string.
//
// The scanner is a pure function: it receives the original text, a cursor
// and a configuration, and returns the byte span of the next token together
// with the advanced cursor. It never allocates and never copies the text;
// callers slice the original string with the returned span.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote is the only character that opens and closes a quoted token.
const Quote = '"'

// Config configures the scanner behavior.
type Config struct {
	// Delimiter separates tokens outside of quoted tokens.
	Delimiter rune

	// UnwrapQuotes strips the opening and closing quote from quoted tokens.
	UnwrapQuotes bool
}

// DefaultConfig returns a configuration splitting on spaces and keeping quotes.
func DefaultConfig() Config {
	return Config{
		Delimiter:    ' ',
		UnwrapQuotes: false,
	}
}

// Cursor is the scanning position within the original text.
type Cursor struct {
	// Pos is the byte offset of the unconsumed remainder.
	Pos int

	// AtDelimiter is set when the previous token ended in front of a
	// delimiter occurrence located at Pos (possibly after white space).
	AtDelimiter bool
}

// Span is a half-open byte range [Start, End) of the original text.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Next scans the token following cur in text.
//
// It returns the token span, the cursor to pass to the following call and
// true, or false once the text is exhausted. The returned cursor never moves
// backwards. A cursor past the end of text is treated as exhausted.
func Next(text string, cur Cursor, cfg Config) (Span, Cursor, bool) {
	pos := cur.Pos
	if pos < 0 {
		pos = 0
	}
	if pos >= len(text) {
		return Span{}, Cursor{Pos: len(text)}, false
	}

	pos = skipSpace(text, pos)

	// The delimiter that terminated the previous token is consumed here,
	// once, so that non-blank delimiters are not found again at offset 0.
	if cur.AtDelimiter && pos < len(text) {
		if r, size := utf8.DecodeRuneInString(text[pos:]); r == cfg.Delimiter {
			pos = skipSpace(text, pos+size)
		}
	}

	if pos >= len(text) {
		return Span{}, Cursor{Pos: len(text)}, false
	}

	src := text[pos:]
	c0, size := utf8.DecodeRuneInString(src)

	var tok Span
	var stop int
	var found bool
	if c0 == Quote {
		tok, stop, found = quoted(src, size, cfg)
	} else {
		tok, stop, found = plain(src, cfg.Delimiter)
	}

	tok.Start += pos
	tok.End += pos
	return tok, Cursor{Pos: pos + stop, AtDelimiter: found}, true
}

// quoted scans a token starting with a quote. Offsets are relative to src.
//
// A delimiter closes the token only when the preceding rune is a quote and
// the delimiter is not the rune right after the opening quote. Any other
// delimiter is part of the token.
func quoted(src string, size int, cfg Config) (Span, int, bool) {
	previous := Quote
	for i, c := range src[size:] {
		bi := size + i
		if c == cfg.Delimiter && bi != 1 && previous == Quote {
			if cfg.UnwrapQuotes {
				return Span{Start: size, End: bi - 1}, bi, true
			}
			return Span{Start: 0, End: bi}, bi, true
		}
		previous = c
	}

	// Unterminated by a delimiter: the whole remainder is the token and is
	// unwrapped only when it also ends with a quote.
	if cfg.UnwrapQuotes && previous == Quote && len(src) > 1 {
		return Span{Start: size, End: len(src) - 1}, len(src), false
	}
	return Span{Start: 0, End: len(src)}, len(src), false
}

// plain scans a token not starting with a quote up to the first delimiter.
func plain(src string, delim rune) (Span, int, bool) {
	bi := strings.IndexRune(src, delim)
	if bi < 0 {
		return Span{Start: 0, End: len(src)}, len(src), false
	}
	return Span{Start: 0, End: bi}, bi, true
}

// skipSpace returns the offset of the first non white space rune at or
// after pos.
func skipSpace(text string, pos int) int {
	return len(text) - len(strings.TrimLeftFunc(text[pos:], unicode.IsSpace))
}
