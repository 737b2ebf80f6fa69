package argparse

import (
	"fmt"
	"strconv"
)

type countKind int

const (
	countExact countKind = iota
	countAtLeastOne
	countZeroOrMore
	countZeroOrOne
	countNone
)

// Count is the arity of an argument: how many tokens one invocation of the
// argument consumes, and when it stops.
type Count struct {
	kind countKind
	n    int
}

var (
	// AtLeastOne consumes one token unconditionally, then behaves like
	// ZeroOrMore.
	AtLeastOne = Count{kind: countAtLeastOne}

	// ZeroOrMore consumes tokens until the stream is empty or the next
	// token is an optional name.
	ZeroOrMore = Count{kind: countZeroOrMore}

	// ZeroOrOne consumes the next token unless the stream is empty or the
	// token is an optional name.
	ZeroOrOne = Count{kind: countZeroOrOne}

	// None consumes nothing.
	None = Count{kind: countNone}
)

// Exact returns a Count that consumes exactly n tokens. The tokens are taken
// as they come, even if they look like optional names. Exact panics if n is
// negative.
func Exact(n int) Count {
	if n < 0 {
		panic(fmt.Sprintf("argparse: negative count %d", n))
	}
	return Count{kind: countExact, n: n}
}

// ParseCount parses a count in nargs notation: a non-negative number for
// Exact, "+" for AtLeastOne, "*" for ZeroOrMore, "?" for ZeroOrOne and
// "none" for None.
func ParseCount(s string) (Count, error) {
	switch s {
	case "+":
		return AtLeastOne, nil
	case "*":
		return ZeroOrMore, nil
	case "?":
		return ZeroOrOne, nil
	case "none":
		return None, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Count{}, fmt.Errorf("malformed count: %q", s)
	}
	return Exact(n), nil
}

// String returns c in the notation accepted by ParseCount.
func (c Count) String() string {
	switch c.kind {
	case countExact:
		return strconv.Itoa(c.n)
	case countAtLeastOne:
		return "+"
	case countZeroOrMore:
		return "*"
	case countZeroOrOne:
		return "?"
	case countNone:
		return "none"
	default:
		return fmt.Sprintf("Count(%d)", int(c.kind))
	}
}

// describe names the tokens c requires, for diagnostics.
func (c Count) describe() string {
	switch {
	case c.kind == countAtLeastOne:
		return "at least one argument"
	case c.kind == countExact && c.n == 1:
		return "one argument"
	default:
		return fmt.Sprintf("%d arguments", c.n)
	}
}

// consume pulls tokens for one invocation of the named argument from args
// and hands each to fn, in order. It returns the number of tokens consumed.
//
// An error from fn stops consumption at once; tokens handed to fn before it
// stay consumed. An invalid Count is a defect in the caller and panics.
func (c Count) consume(args *Tokens, name string, fn func(token string) error) (int, error) {
	switch c.kind {
	case countExact:
		for i := 0; i < c.n; i++ {
			token, err := args.Next(c.shortage(name, i))
			if err != nil {
				return i, &Error{Arg: name, Msg: err.Error()}
			}
			if err := fn(token); err != nil {
				return i + 1, err
			}
		}
		return c.n, nil

	case countAtLeastOne:
		token, err := args.Next(c.shortage(name, 0))
		if err != nil {
			return 0, &Error{Arg: name, Msg: err.Error()}
		}
		if err := fn(token); err != nil {
			return 1, err
		}
		n, err := ZeroOrMore.consume(args, name, fn)
		return n + 1, err

	case countZeroOrMore:
		n := 0
		for args.positional() {
			token, _ := args.Next("")
			n++
			if err := fn(token); err != nil {
				return n, err
			}
		}
		return n, nil

	case countZeroOrOne:
		if !args.positional() {
			return 0, nil
		}
		token, _ := args.Next("")
		return 1, fn(token)

	case countNone:
		return 0, nil

	default:
		panic(fmt.Sprintf("argparse: argument %s has invalid count %v", name, c))
	}
}

// shortage is the diagnostic for running out of tokens after given tokens
// have been supplied to the named argument.
func (c Count) shortage(name string, given int) string {
	if c.kind == countExact && c.n > 1 {
		return fmt.Sprintf("argument %s: not enough arguments: expected %s, %d already given",
			name, c.describe(), given)
	}
	return fmt.Sprintf("argument %s: not enough arguments: expected %s", name, c.describe())
}
