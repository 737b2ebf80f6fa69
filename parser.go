package argparse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/shlex"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	helpName = "-h"
	helpText = "show this help message and exit"
)

// Outcome is the terminal state of a parse.
type Outcome int

const (
	Failed        Outcome = iota // The command line was rejected
	Complete                     // All arguments were parsed
	HelpRequested                // Help was shown; nothing after it was parsed
)

func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Complete:
		return "complete"
	case HelpRequested:
		return "help requested"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type entry struct {
	arg  Argument
	help helpEntry
}

// Parser holds the registered arguments and parses command lines against
// them. A Parser is built once and may then parse any number of command
// lines, one at a time.
type Parser struct {
	description string
	program     string

	// Optionals are matched by exact name; iteration follows registration
	// order for usage and help. Positionals are consumed in order.
	optionals   *orderedmap.OrderedMap[string, *entry]
	positionals []*entry

	out    io.Writer
	errOut io.Writer
	logger *log.Logger
	color  *bool
	exit   func(code int)
}

// ParserOption configures a Parser at construction.
type ParserOption func(*Parser)

// Program sets the program name used in usage and diagnostics. By default
// the base name of argv[0] is used.
func Program(name string) ParserOption {
	return func(p *Parser) {
		p.program = name
	}
}

// Output sets the sink for help text. The default is os.Stdout.
func Output(w io.Writer) ParserOption {
	return func(p *Parser) {
		p.out = w
	}
}

// ErrorOutput sets the sink for failure diagnostics. The default is
// os.Stderr.
func ErrorOutput(w io.Writer) ParserOption {
	return func(p *Parser) {
		p.errOut = w
	}
}

// Logger sets the logger used for debug tracing of the parse. By default
// the parser logs to the error sink at info level, which keeps tracing
// silent.
func Logger(l *log.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = l
	}
}

// Color forces coloured output on or off. By default colour is used only
// when a sink is a terminal and NO_COLOR is unset.
func Color(enabled bool) ParserOption {
	return func(p *Parser) {
		p.color = &enabled
	}
}

// ExitOnHelp makes the parser call exit(0) once help has been written,
// instead of returning HelpRequested. A nil exit selects os.Exit.
func ExitOnHelp(exit func(code int)) ParserOption {
	return func(p *Parser) {
		if exit == nil {
			exit = os.Exit
		}
		p.exit = exit
	}
}

// New returns a parser with the given description and the built-in "-h"
// help argument.
func New(description string, opts ...ParserOption) *Parser {
	p := &Parser{
		description: description,
		optionals:   orderedmap.New[string, *entry](),
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = log.New(p.errOut)
		p.logger.SetTimeFormat("")
		p.logger.SetLevel(log.InfoLevel)
		p.logger.SetPrefix("argparse")
	}

	p.Func(helpName, p.callHelp, Arity(None), Help(helpText))
	return p
}

func (p *Parser) callHelp(r *Running, _ *Tokens, _ string) error {
	p.writeHelp(r.Out, r.App)
	return ErrHelp
}

// insert routes an argument into the optional map or the positional
// sequence by its name. Names must be unique across both.
func (p *Parser) insert(name string, arg Argument, e extra) {
	if p.defined(name) {
		panic(fmt.Sprintf("argparse: argument %s redefined", name))
	}

	ent := &entry{
		arg: arg,
		help: helpEntry{
			name:    name,
			help:    e.help,
			metavar: e.metavar,
			count:   e.count,
		},
	}

	if IsOptional(name) {
		p.optionals.Set(name, ent)
		return
	}
	p.positionals = append(p.positionals, ent)
}

func (p *Parser) defined(name string) bool {
	if _, ok := p.optionals.Get(name); ok {
		return true
	}
	for _, ent := range p.positionals {
		if ent.help.name == name {
			return true
		}
	}
	return false
}

// appName resolves the program name for a parse started with argv0.
func (p *Parser) appName(argv0 string) string {
	switch {
	case p.program != "":
		return p.program
	case argv0 != "":
		return filepath.Base(argv0)
	case len(os.Args) > 0:
		return filepath.Base(os.Args[0])
	default:
		return ""
	}
}

// Parse parses argv, whose first element is the program path and is not
// parsed. On Failed the usage line and a diagnostic have been written to the
// error sink, and the error is the cause, usually an *Error. Complete and
// HelpRequested come with a nil error.
func (p *Parser) Parse(argv []string) (Outcome, error) {
	argv0, rest := "", argv
	if len(argv) > 0 {
		argv0, rest = argv[0], argv[1:]
	}
	r := &Running{App: p.appName(argv0), Out: p.out}

	p.logger.Debug("parse", "app", r.App, "tokens", len(rest))

	err := p.parse(r, NewTokens(rest))
	switch {
	case err == nil:
		p.logger.Debug("parse complete")
		return Complete, nil

	case errors.Is(err, ErrHelp):
		p.logger.Debug("help requested")
		if p.exit != nil {
			p.exit(0)
		}
		return HelpRequested, nil
	}

	p.logger.Debug("parse failed", "err", err)
	p.fail(r.App, err)
	return Failed, err
}

// ParseArgs parses the process's command line.
func (p *Parser) ParseArgs() (Outcome, error) {
	return p.Parse(os.Args)
}

// ParseString splits cmdline into tokens with shell quoting rules and parses
// them. The string holds arguments only, no program name, so diagnostics use
// the Program option or else the base name of os.Args[0], whether the string
// fails to split or its tokens fail to parse.
func (p *Parser) ParseString(cmdline string) (Outcome, error) {
	args, err := shlex.Split(cmdline)
	if err != nil {
		perr := &Error{Msg: "malformed command line: " + err.Error(), Err: err}
		p.fail(p.appName(""), perr)
		return Failed, perr
	}
	return p.Parse(append([]string{""}, args...))
}

// fail writes the usage line and the diagnostic for err to the error sink.
func (p *Parser) fail(app string, err error) {
	p.writeUsage(p.errOut, app)
	fmt.Fprintf(p.errOut, "\n%s: %s %s\n", app,
		p.paint(p.errOut, "error:", errorColor...), err)
}

// parse runs the dispatch loop. The positional cursor lives only for the
// duration of one call.
func (p *Parser) parse(r *Running, args *Tokens) error {
	cursor := 0

	for !args.Empty() {
		token, _ := args.Peek()

		if IsOptional(token) {
			name, _ := args.Next("")
			ent, ok := p.optionals.Get(name)
			if !ok {
				return &Error{Arg: name, Token: name,
					Msg: "unknown optional argument: " + name}
			}

			p.logger.Debug("optional", "name", name, "count", ent.help.count,
				"remaining", args.Len())
			if err := ent.arg.Parse(r, args, name); err != nil {
				return err
			}
			continue
		}

		if cursor >= len(p.positionals) {
			return &Error{Token: token,
				Msg: "all positional arguments have been consumed: " + token}
		}

		ent := p.positionals[cursor]
		cursor++

		p.logger.Debug("positional", "name", ent.help.name, "index", cursor-1,
			"count", ent.help.count, "remaining", args.Len())
		if err := ent.arg.Parse(r, args, ent.help.name); err != nil {
			return err
		}
	}

	if cursor != len(p.positionals) {
		return &Error{Arg: p.positionals[cursor].help.name, Msg: "too few arguments"}
	}
	return nil
}
