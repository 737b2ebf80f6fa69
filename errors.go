package argparse

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by the built-in help argument after the help text has
// been written. Parse reports it as HelpRequested.
var ErrHelp = errors.New("argparse: help requested")

// Error describes a command line that could not be parsed: an unknown
// optional, a surplus or missing positional, too few tokens for an
// argument's count, or a token that failed to convert.
type Error struct {
	Arg   string // Name of the argument being parsed, if any
	Token string // Offending token, if any
	Msg   string // Diagnostic shown to the user
	Err   error  // Underlying cause, e.g. from strconv
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// argumentError attributes err, raised while parsing token for the named
// argument, to that argument.
func argumentError(name, token string, err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return &Error{
			Arg:   name,
			Token: token,
			Msg:   fmt.Sprintf("argument %s: %s", name, perr.Msg),
			Err:   err,
		}
	}
	return &Error{
		Arg:   name,
		Token: token,
		Msg:   fmt.Sprintf("argument %s: failed to parse %s: %v", name, token, err),
		Err:   err,
	}
}
