package argparse

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	usageColor = []color.Attribute{color.Bold}
	errorColor = []color.Attribute{color.FgRed, color.Bold}
)

var isTerminalFn = term.IsTerminal

// colorEnabled decides whether text written to w is coloured. A forced
// setting wins; otherwise w must be a terminal, NO_COLOR unset and TERM
// neither empty nor "dumb".
func colorEnabled(w io.Writer, force *bool) bool {
	if force != nil {
		return *force
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isTerminalFn(int(f.Fd()))
}

func (p *Parser) paint(w io.Writer, text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if colorEnabled(w, p.color) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}
