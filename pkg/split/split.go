// Package split splits strings on a delimiter while keeping quoted
// substrings intact.
//
// A token starting with a double quote extends to the first delimiter that
// directly follows a quote, so that
//
//	xterm -e "vi /some/path"
//
// splits into xterm, -e and "vi /some/path". Quotes that neither start nor
// end a token are ordinary characters. There is no escape character and no
// nesting. Leading white space is skipped before every token, whatever the
// delimiter.
//
// # Zero Copy
//
// Every token returned by this package is a substring of the input text:
// nothing is copied, and quote unwrapping only narrows the window. Spans
// report the same tokens as byte offsets into the input.
//
// # Thread Safety
//
// A Tokenizer is a small value. Copying it forks the scanning position, so
// each copy can be consumed independently, including from different
// goroutines. A single Tokenizer must not be advanced concurrently.
//
// # Example usage:
//
//	tok := split.Whitespace(`xterm -e "vi /some/path"`).UnwrapQuotes(true)
//	for arg := range tok.All() {
//	    fmt.Println(arg)
//	}
package split

import (
	"iter"

	"github.com/shapestone/shape-split/internal/scan"
)

// Quote is the character delimiting quoted tokens.
const Quote = scan.Quote

// Options configures a Tokenizer.
type Options struct {
	// Delimiter separates tokens outside of quoted tokens.
	// Default: ' '
	Delimiter rune

	// UnwrapQuotes removes the quotes surrounding quoted tokens.
	// Default: false
	UnwrapQuotes bool
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	cfg := scan.DefaultConfig()
	return Options{
		Delimiter:    cfg.Delimiter,
		UnwrapQuotes: cfg.UnwrapQuotes,
	}
}

// Span is the half-open byte range [Start, End) of a token in the text the
// Tokenizer was created from.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the token in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// In returns the token denoted by s within text.
// text must be the string the span was produced from.
func (s Span) In(text string) string {
	return text[s.Start:s.End]
}

// Tokenizer yields the tokens of a string one at a time.
//
// The zero value yields no tokens. Methods that reconfigure a Tokenizer
// return a modified copy and leave the receiver untouched.
type Tokenizer struct {
	text string
	cur  scan.Cursor
	cfg  scan.Config
}

// New creates a tokenizer splitting text on delimiter.
// Quotes are kept on quoted tokens; see UnwrapQuotes.
//
// Example:
//
//	tok := split.New(`Type "rhit -p blog"`, ' ')
//	tok.Next() // "Type", true
//	tok.Next() // `"rhit -p blog"`, true
//	tok.Next() // "", false
func New(text string, delimiter rune) Tokenizer {
	opts := DefaultOptions()
	opts.Delimiter = delimiter
	return NewWithOptions(text, opts)
}

// NewWithOptions creates a tokenizer with custom options.
func NewWithOptions(text string, opts Options) Tokenizer {
	return Tokenizer{
		text: text,
		cfg: scan.Config{
			Delimiter:    opts.Delimiter,
			UnwrapQuotes: opts.UnwrapQuotes,
		},
	}
}

// Whitespace returns a tokenizer splitting text on spaces.
func Whitespace(text string) Tokenizer {
	return New(text, ' ')
}

// OnChar returns a tokenizer splitting text on delimiter.
func OnChar(text string, delimiter rune) Tokenizer {
	return New(text, delimiter)
}

// UnwrapQuotes returns a copy of t which strips, or keeps, the quotes
// around quoted tokens. The copy starts where t currently is.
//
// Example:
//
//	tok := split.Whitespace(cmd).UnwrapQuotes(true)
func (t Tokenizer) UnwrapQuotes(enabled bool) Tokenizer {
	t.cfg.UnwrapQuotes = enabled
	return t
}

// Options returns the configuration of t.
func (t Tokenizer) Options() Options {
	return Options{
		Delimiter:    t.cfg.Delimiter,
		UnwrapQuotes: t.cfg.UnwrapQuotes,
	}
}

// Next returns the next token and true, or "" and false when the text is
// exhausted. Once exhausted, Next keeps returning false.
func (t *Tokenizer) Next() (string, bool) {
	span, ok := t.NextSpan()
	if !ok {
		return "", false
	}
	return t.text[span.Start:span.End], true
}

// NextSpan is like Next but returns the byte range of the token.
func (t *Tokenizer) NextSpan() (Span, bool) {
	span, cur, ok := scan.Next(t.text, t.cur, t.cfg)
	t.cur = cur
	if !ok {
		return Span{}, false
	}
	return Span{Start: span.Start, End: span.End}, true
}

// Remaining returns the part of the text not consumed yet.
func (t Tokenizer) Remaining() string {
	return t.text[t.Offset():]
}

// Offset returns the byte offset of Remaining within the original text.
func (t Tokenizer) Offset() int {
	if t.cur.Pos > len(t.text) {
		return len(t.text)
	}
	return t.cur.Pos
}

// All returns an iterator over the remaining tokens.
// Iterating advances t; breaking out of the loop leaves t positioned after
// the last token yielded.
func (t *Tokenizer) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Spans returns an iterator over the byte ranges of the remaining tokens.
// Iterating advances t.
func (t *Tokenizer) Spans() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for {
			span, ok := t.NextSpan()
			if !ok || !yield(span) {
				return
			}
		}
	}
}

// Collect consumes t and returns all remaining tokens.
// The tokens share memory with the original text.
func (t *Tokenizer) Collect() []string {
	tokens := make([]string, 0, 8)
	for tok := range t.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}
