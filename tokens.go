package argparse

import (
	"github.com/ef-ds/deque"
)

// Marker is the first character of every optional argument name.
const Marker = '-'

// IsOptional reports whether s names an optional argument: it must be
// non-empty and start with Marker. The same rule routes registrations and
// classifies tokens during parsing.
func IsOptional(s string) bool {
	return s != "" && s[0] == Marker
}

// Tokens holds the command-line tokens that have not been consumed yet.
// Tokens are removed from the front only.
type Tokens struct {
	q deque.Deque
}

// NewTokens returns a stream over a copy of args.
func NewTokens(args []string) *Tokens {
	t := &Tokens{}
	for _, arg := range args {
		t.q.PushBack(arg)
	}
	return t
}

// Empty reports whether all tokens have been consumed.
func (t *Tokens) Empty() bool {
	return t.q.Len() == 0
}

// Len returns the number of remaining tokens.
func (t *Tokens) Len() int {
	return t.q.Len()
}

// Peek returns the next token without consuming it. The boolean is false
// if the stream is empty.
func (t *Tokens) Peek() (string, bool) {
	v, ok := t.q.Front()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Next consumes and returns the next token. If the stream is empty, an
// *Error with the given message is returned instead.
func (t *Tokens) Next(msg string) (string, error) {
	v, ok := t.q.PopFront()
	if !ok {
		if msg == "" {
			msg = "no more arguments available"
		}
		return "", &Error{Msg: msg}
	}
	return v.(string), nil
}

// Remaining returns the unconsumed tokens without consuming them.
func (t *Tokens) Remaining() []string {
	n := t.q.Len()
	out := make([]string, 0, n)

	// Rotate once through the queue; the order is unchanged afterwards
	for i := 0; i < n; i++ {
		v, _ := t.q.PopFront()
		out = append(out, v.(string))
		t.q.PushBack(v)
	}
	return out
}

// positional reports whether the next token exists and is not an optional
// name. Variadic counts stop consuming as soon as this is false.
func (t *Tokens) positional() bool {
	s, ok := t.Peek()
	return ok && !IsOptional(s)
}
