// Package typewriter reveals a string one character per tick.
package typewriter

import (
	"iter"
	"time"
)

// DefaultTick is the interval between two revealed characters
const DefaultTick = 260 * time.Millisecond

// Typewriter walks the prefixes of a string, from the empty prefix to the full
// text. It is single use: once exhausted it stays exhausted.
type Typewriter struct {
	runes []rune
	next  int
	cur   string
}

// New creates a typewriter over text
func New(text string) *Typewriter {
	return &Typewriter{runes: []rune(text)}
}

// Next returns the next prefix. The second value is false once every prefix
// has been produced.
func (t *Typewriter) Next() (string, bool) {
	if t.next > len(t.runes) {
		return t.cur, false
	}
	t.cur = string(t.runes[:t.next])
	t.next++
	return t.cur, true
}

// Current returns the last prefix produced
func (t *Typewriter) Current() string {
	return t.cur
}

// Done reports whether the full text has been produced
func (t *Typewriter) Done() bool {
	return t.next > len(t.runes)
}

// Len is the number of characters in the text
func (t *Typewriter) Len() int {
	return len(t.runes)
}

// Text returns the full text
func (t *Typewriter) Text() string {
	return string(t.runes)
}

// All yields the remaining prefixes. It consumes the typewriter, so ranging
// over it a second time yields nothing.
func (t *Typewriter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			prefix, ok := t.Next()
			if !ok || !yield(prefix) {
				return
			}
		}
	}
}

// Prefixes returns every prefix of text, the empty one first
func Prefixes(text string) []string {
	tw := New(text)
	out := make([]string, 0, tw.Len()+1)
	for prefix := range tw.All() {
		out = append(out, prefix)
	}
	return out
}
