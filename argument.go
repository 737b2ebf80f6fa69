package argparse

import (
	"fmt"
	"io"
	"reflect"
)

// Running carries what exists only while a parse is in progress.
type Running struct {
	App string    // Program name used in usage and diagnostics
	Out io.Writer // Output sink, e.g. for help text
}

// Argument is a registered argument. Parse is called once per invocation
// with the stream positioned after the optional name (for optionals) or at
// the first token (for positionals); name is the registered name.
type Argument interface {
	Parse(r *Running, args *Tokens, name string) error
}

// Callback is an Argument that runs arbitrary code. It is responsible for
// consuming whatever tokens it needs from args; its Count only shapes the
// usage and help text.
type Callback func(r *Running, args *Tokens, name string) error

// Parse calls f.
func (f Callback) Parse(r *Running, args *Tokens, name string) error {
	return f(r, args, name)
}

// typed converts every token its count admits and combines the results
// into target.
type typed[T, V any] struct {
	target  *T
	count   Count
	combine Combiner[T, V]
	convert Converter[V]
}

func (a *typed[T, V]) Parse(_ *Running, args *Tokens, name string) error {
	_, err := a.count.consume(args, name, func(token string) error {
		v, err := a.convert(token)
		if err != nil {
			return argumentError(name, token, err)
		}
		a.combine(a.target, v)
		return nil
	})
	return err
}

// Option configures a single argument at registration.
type Option func(*extra)

type extra struct {
	help    string
	count   Count
	metavar string
}

func newExtra(opts []Option) extra {
	e := extra{count: Exact(1)}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Help sets the description shown in the help text.
func Help(text string) Option {
	return func(e *extra) {
		e.help = text
	}
}

// Arity sets how many tokens the argument consumes. The default is Exact(1).
func Arity(c Count) Option {
	return func(e *extra) {
		e.count = c
	}
}

// Metavar sets the placeholder used for the argument's values in usage and
// help text.
func Metavar(name string) Option {
	return func(e *extra) {
		e.metavar = name
	}
}

// Add registers an argument that converts each consumed token with convert
// and folds it into target with combine. A nil convert selects Convert[V].
//
// Add panics if the name is already registered, if target or combine is nil,
// or if convert is nil and V is not supported by Convert.
func Add[T, V any](p *Parser, name string, target *T, combine Combiner[T, V],
	convert Converter[V], opts ...Option) {

	if target == nil {
		panic(fmt.Sprintf("argparse: argument %s has no target", name))
	}
	if combine == nil {
		panic(fmt.Sprintf("argparse: argument %s has no combiner", name))
	}
	if convert == nil {
		if t := reflect.TypeOf((*V)(nil)).Elem(); !convertible(t) {
			panic(fmt.Sprintf("argparse: argument %s: cannot convert to %s", name, t))
		}
		convert = Convert[V]
	}

	e := newExtra(opts)
	p.insert(name, &typed[T, V]{
		target:  target,
		count:   e.count,
		combine: combine,
		convert: convert,
	}, e)
}

// Var registers an argument whose values are assigned to target; with a
// count above one, the last value wins.
func Var[T any](p *Parser, name string, target *T, opts ...Option) {
	Add[T, T](p, name, target, Assign[T], nil, opts...)
}

// SliceVar registers an argument whose values are appended to target.
func SliceVar[T any](p *Parser, name string, target *[]T, opts ...Option) {
	Add[[]T, T](p, name, target, Append[T], nil, opts...)
}

// Func registers a callback argument. Without an Arity option the callback
// is shown as taking one value.
func (p *Parser) Func(name string, fn Callback, opts ...Option) {
	if fn == nil {
		panic(fmt.Sprintf("argparse: argument %s has no callback", name))
	}
	p.insert(name, fn, newExtra(opts))
}

// Flag registers a switch that consumes no tokens and sets target to true
// when present. Any Arity option is overridden with None.
func (p *Parser) Flag(name string, target *bool, opts ...Option) {
	if target == nil {
		panic(fmt.Sprintf("argparse: argument %s has no target", name))
	}
	opts = append(opts[:len(opts):len(opts)], Arity(None))
	p.Func(name, func(*Running, *Tokens, string) error {
		*target = true
		return nil
	}, opts...)
}
