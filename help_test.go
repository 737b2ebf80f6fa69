package argparse

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_helpEntryRendering(t *testing.T) {
	tests := []struct {
		name        string
		metavar     string
		count       Count
		wantUsage   string
		wantCommand string
	}{
		{"-h", "", None, "[-h]", "-h"},
		{"-op", "", Exact(1), "[-op OP]", "-op OP"},
		{"--size", "", Exact(2), "[--size SIZE SIZE]", "--size SIZE SIZE"},
		{"-zero", "", Exact(0), "[-zero]", "-zero"},
		{"-strings", "string", AtLeastOne, "[-strings string [string ...]]", "-strings string [string ...]"},
		{"-i", "", ZeroOrMore, "[-i [I [I ...]]]", "-i [I [I ...]]"},
		{"-o", "FILE", ZeroOrOne, "[-o [FILE]]", "-o [FILE]"},
		{"compiler", "", Exact(1), "compiler", "compiler"},
		{"pair", "", Exact(2), "pair pair", "pair"},
		{"files", "", AtLeastOne, "files [files ...]", "files"},
		{"rest", "", ZeroOrMore, "[rest [rest ...]]", "rest"},
		{"out", "", ZeroOrOne, "[out]", "out"},
		{"src", "SOURCE", Exact(1), "SOURCE", "SOURCE"},
	}

	for _, test := range tests {
		h := helpEntry{name: test.name, metavar: test.metavar, count: test.count}
		if got := h.usage(); got != test.wantUsage {
			t.Errorf("%s usage: got=%q want=%q", test.name, got, test.wantUsage)
		}
		if got := h.command(); got != test.wantCommand {
			t.Errorf("%s command: got=%q want=%q", test.name, got, test.wantCommand)
		}
	}
}

func Test_helpEntryInvalidCount(t *testing.T) {
	h := helpEntry{name: "-x", count: Count{kind: countKind(42)}}
	assert.Panics(t, func() { h.usage() })
}

func TestHelpWithoutDescription(t *testing.T) {
	var out bytes.Buffer
	var v bool
	p := New("", Program("prog"), Output(&out))
	p.Flag("-v", &v, Help("be verbose"))

	p.PrintHelp()
	assert.Equal(t,
		"usage: prog [-h] [-v]\n\noptional arguments:\n  -h\tshow this help message and exit\n  -v\tbe verbose\n\n",
		out.String())
}

func TestUsageOutputs(t *testing.T) {
	var out, errb, w bytes.Buffer
	var files []string
	p := New("", Program("prog"), Output(&out), ErrorOutput(&errb))
	SliceVar(p, "files", &files, Arity(AtLeastOne))

	want := "usage: prog [-h] files [files ...]\n"
	assert.Equal(t, want, p.Usage())

	p.PrintUsage()
	assert.Equal(t, want, errb.String())
	assert.Empty(t, out.String())

	p.WriteUsage(&w)
	assert.Equal(t, want, w.String())

	w.Reset()
	p.WriteHelp(&w)
	assert.Equal(t, p.Help(), w.String())
}

func TestColorForced(t *testing.T) {
	var errb bytes.Buffer
	p := New("", Program("prog"), ErrorOutput(&errb), Color(true))

	assert.Contains(t, p.Usage(), "\x1b[")
	assert.True(t, strings.HasSuffix(p.Usage(), "prog [-h]\n"))

	_, err := p.Parse([]string{"prog", "-x"})
	require.Error(t, err)
	assert.Contains(t, errb.String(), "\x1b[")
	assert.Contains(t, errb.String(), "unknown optional argument: -x")

	p = New("", Program("prog"), Color(false))
	assert.Equal(t, "usage: prog [-h]\n", p.Usage())
}

func Test_colorEnabled(t *testing.T) {
	saved := isTerminalFn
	t.Cleanup(func() { isTerminalFn = saved })
	isTerminalFn = func(int) bool { return true }

	on, off := true, false
	var buf bytes.Buffer

	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	assert.True(t, colorEnabled(os.Stdout, nil))
	assert.False(t, colorEnabled(&buf, nil), "not a file")
	assert.True(t, colorEnabled(&buf, &on))
	assert.False(t, colorEnabled(os.Stdout, &off))

	t.Setenv("TERM", "dumb")
	assert.False(t, colorEnabled(os.Stdout, nil))

	t.Setenv("TERM", "")
	assert.False(t, colorEnabled(os.Stdout, nil))

	t.Setenv("TERM", "xterm")
	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(os.Stdout, nil))
	assert.True(t, colorEnabled(os.Stdout, &on))

	t.Setenv("NO_COLOR", "")
	isTerminalFn = func(int) bool { return false }
	assert.False(t, colorEnabled(os.Stdout, nil))
}

// tokensFor returns values that satisfy c, each tagged with the argument
// name so that a parse can be checked against them.
func tokensFor(name string, c Count) []string {
	n := 0
	switch c.kind {
	case countExact:
		n = c.n
	case countAtLeastOne:
		n = 2
	case countZeroOrMore, countZeroOrOne:
		n = 1
	}

	out := make([]string, n)
	for i := range out {
		out[i] = strings.TrimLeft(name, "-") + strconv.Itoa(i)
	}
	return out
}

func TestUsageRoundTrip(t *testing.T) {
	type decl struct {
		name  string
		count Count
	}
	decls := []decl{
		{"-flag", None},
		{"-one", Exact(1)},
		{"-pair", Exact(2)},
		{"-many", AtLeastOne},
		{"-any", ZeroOrMore},
		{"-maybe", ZeroOrOne},
		{"first", Exact(1)},
		{"second", Exact(2)},
		{"rest", AtLeastOne},
	}

	var errb bytes.Buffer
	p := New("", Program("prog"), ErrorOutput(&errb))
	got := map[string][]string{}
	for _, d := range decls {
		name := d.name
		p.Func(name, func(_ *Running, args *Tokens, _ string) error {
			_, err := d.count.consume(args, name, func(token string) error {
				got[name] = append(got[name], token)
				return nil
			})
			return err
		}, Arity(d.count))
	}

	// Every declared argument appears in the usage line
	usage := p.Usage()
	for _, d := range decls {
		assert.Contains(t, usage, d.name)
	}

	var cmdline []string
	want := map[string][]string{}
	for _, d := range decls {
		values := tokensFor(d.name, d.count)
		if IsOptional(d.name) {
			cmdline = append(cmdline, d.name)
		}
		cmdline = append(cmdline, values...)
		if len(values) > 0 {
			want[d.name] = values
		}
	}

	outcome, err := p.ParseString(strings.Join(cmdline, " "))
	require.NoError(t, err, errb.String())
	assert.Equal(t, Complete, outcome)
	assert.Equal(t, want, got)
}
