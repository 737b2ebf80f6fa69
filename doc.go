/*
Package argparse implements a declarative command-line parser. Callers
register named positional and optional arguments, each bound to a
variable, and the parser consumes the command line token by token,
converting tokens to typed values and folding them into the bound
variables. Usage and help text are generated from the registrations.


# Optional and Positional Arguments

A single lexical rule decides what kind of argument a name is: a name
(or a command-line token) that is non-empty and starts with "-" is
optional, everything else is positional. The empty string is positional.

Optional arguments are looked up by exact name and may appear anywhere on
the command line, in any order. Positional arguments are consumed strictly
in the order they were registered. There is no abbreviation of optional
names, and no "--" terminator.

    p := argparse.New("Compile things.")

    var compiler string
    var level = 2
    argparse.Var(p, "compiler", &compiler, argparse.Help("compiler to run"))
    argparse.Var(p, "-op", &level, argparse.Help("optimisation level"))

    outcome, err := p.ParseArgs()

Every parser has a built-in "-h" optional that writes the help text to the
output sink and stops parsing. Registering a name twice, "-h" included,
panics.


# Arity

Each argument carries a Count that controls how many tokens one invocation
consumes:

  Exact(n)    exactly n tokens, even if they look like optional names
  AtLeastOne  one token unconditionally, then as ZeroOrMore
  ZeroOrMore  tokens up to the end or up to the next optional name
  ZeroOrOne   at most one token, never an optional name
  None        no tokens

The default is Exact(1). In usage text the same counts are written as
"N", "N [N ...]", "[N [N ...]]", "[N]" and "" respectively.


# Conversion and Combination

Typed arguments convert every consumed token with a Converter and fold the
result into the bound variable with a Combiner. Var assigns, SliceVar
appends, and Add accepts any pair:

    var total int
    argparse.Add(p, "-add", &total, argparse.Sum[int], argparse.Convert[int],
        argparse.Arity(argparse.AtLeastOne))

The standard converter Convert handles strings, booleans, integers of all
widths (decimal only), floating point and complex numbers,
time.Duration, time.Time and any type implementing
encoding.TextUnmarshaler. The whole token must parse.

When a conversion fails halfway through a multi-token invocation, the
values already combined are kept.


# Outcomes

Parse returns Complete, Failed or HelpRequested. On failure the usage line
and a diagnostic prefixed with the program name are written to the error
sink, and the returned error is usually an *Error; a callback's own error
is returned as is. Use the ExitOnHelp option to
terminate the process after help has been shown.


# Struct Tags

Bind registers the exported fields of a struct. The following tags are
recognized:

  arg-name    : argument name; defaults to the lower-cased field name (positional)
  arg-help    : help text
  arg-count   : arity in nargs notation: a number, "+", "*", "?" or "none"
  arg-metavar : display name in usage and help
  arg-format  : time.Parse layout for time.Time fields
  arg-ignore  : skip the field

Slice fields append, other fields assign. A bool field with an optional name
and no arg-count tag is a switch: it consumes nothing and is set to true.
*/
package argparse
