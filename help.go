package argparse

import (
	"fmt"
	"io"
	"strings"
)

// helpEntry is the read-only view of a registration used for rendering.
type helpEntry struct {
	name    string
	help    string
	metavar string
	count   Count
}

// usage is the entry's token in the usage line, e.g. "[-op OP]".
func (h helpEntry) usage() string {
	rep := h.metavarRep()
	if !IsOptional(h.name) {
		return rep
	}
	if rep == "" {
		return "[" + h.name + "]"
	}
	return "[" + h.name + " " + rep + "]"
}

// metavarRep renders the placeholders for the entry's count.
func (h helpEntry) metavarRep() string {
	m := h.metavarName()

	switch h.count.kind {
	case countNone:
		return ""
	case countAtLeastOne:
		return m + " [" + m + " ...]"
	case countZeroOrOne:
		return "[" + m + "]"
	case countZeroOrMore:
		return "[" + m + " [" + m + " ...]]"
	case countExact:
		reps := make([]string, h.count.n)
		for i := range reps {
			reps[i] = m
		}
		return strings.Join(reps, " ")
	default:
		panic(fmt.Sprintf("argparse: argument %s has invalid count %v", h.name, h.count))
	}
}

// metavarName is the placeholder for one value: the explicit metavar, the
// upper-cased optional name without its markers, or the positional name.
func (h helpEntry) metavarName() string {
	if h.metavar != "" {
		return h.metavar
	}
	if IsOptional(h.name) {
		return strings.ToUpper(strings.TrimLeft(h.name, string(Marker)))
	}
	return h.name
}

// command is the left column of the entry's help line.
func (h helpEntry) command() string {
	if !IsOptional(h.name) {
		return h.metavarName()
	}
	if rep := h.metavarRep(); rep != "" {
		return h.name + " " + rep
	}
	return h.name
}

func (p *Parser) optionalHelp() []helpEntry {
	out := make([]helpEntry, 0, p.optionals.Len())
	for pair := p.optionals.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.help)
	}
	return out
}

func (p *Parser) positionalHelp() []helpEntry {
	out := make([]helpEntry, 0, len(p.positionals))
	for _, ent := range p.positionals {
		out = append(out, ent.help)
	}
	return out
}

// usageLine renders the synopsis after the "usage:" heading: the program,
// then optionals and positionals in registration order.
func (p *Parser) usageLine(app string) string {
	parts := []string{app}
	for _, h := range append(p.optionalHelp(), p.positionalHelp()...) {
		if u := h.usage(); u != "" {
			parts = append(parts, u)
		}
	}
	return strings.Join(parts, " ")
}

func (p *Parser) writeUsage(w io.Writer, app string) {
	fmt.Fprintf(w, "%s %s\n", p.paint(w, "usage:", usageColor...), p.usageLine(app))
}

func (p *Parser) writeHelp(w io.Writer, app string) {
	p.writeUsage(w, app)
	fmt.Fprintln(w)

	if p.description != "" {
		fmt.Fprintf(w, "%s\n\n", p.description)
	}

	writeSection(w, "positional arguments:", p.positionalHelp())
	writeSection(w, "optional arguments:", p.optionalHelp())
}

func writeSection(w io.Writer, title string, entries []helpEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, h := range entries {
		fmt.Fprintf(w, "  %s\t%s\n", h.command(), h.help)
	}
	fmt.Fprintln(w)
}

// Usage returns the usage line. Like Help, it is coloured only if the
// parser was built with Color(true).
func (p *Parser) Usage() string {
	var sb strings.Builder
	p.writeUsage(&sb, p.appName(""))
	return sb.String()
}

// Help returns the full help text.
func (p *Parser) Help() string {
	var sb strings.Builder
	p.writeHelp(&sb, p.appName(""))
	return sb.String()
}

// WriteUsage writes the usage line to w.
func (p *Parser) WriteUsage(w io.Writer) {
	p.writeUsage(w, p.appName(""))
}

// WriteHelp writes the full help text to w.
func (p *Parser) WriteHelp(w io.Writer) {
	p.writeHelp(w, p.appName(""))
}

// PrintUsage writes the usage line to the error sink.
func (p *Parser) PrintUsage() {
	p.WriteUsage(p.errOut)
}

// PrintHelp writes the full help text to the output sink.
func (p *Parser) PrintHelp() {
	p.WriteHelp(p.out)
}
