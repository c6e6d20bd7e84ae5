// Package erratafmt renders errata for human consumption. It is split out
// of the model package so that the core stays free of terminal and
// formatting concerns.
package erratafmt

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"errata"
)

// severityColors maps every severity to its display color. The map is
// exhaustive over the enumerated variants.
var severityColors = map[errata.Severity]*color.Color{
	errata.SevDiag:      color.New(color.FgHiBlack),
	errata.SevDebug:     color.New(color.FgCyan),
	errata.SevInfo:      color.New(color.FgBlue),
	errata.SevNote:      color.New(color.FgGreen),
	errata.SevWarning:   color.New(color.FgYellow),
	errata.SevError:     color.New(color.FgRed),
	errata.SevFatal:     color.New(color.FgRed, color.Bold),
	errata.SevAlert:     color.New(color.FgMagenta, color.Bold),
	errata.SevEmergency: color.New(color.FgHiRed, color.Bold),
}

// Pretty writes one line per annotation, newest first, in the same shape as
// Errata.Write but with optional level coloring and width-limited text.
func Pretty(w io.Writer, e *errata.Errata, opts Opts) {
	lead := ""
	for _, a := range e.Annotations() {
		tag := a.Severity().String()
		if opts.Color {
			tag = severityColors[a.Severity()].Sprint(tag)
		}
		text := string(a.Text())
		if opts.Width > 0 {
			text = runewidth.Truncate(text, opts.Width, "…")
		}
		fmt.Fprintf(w, "%s[%s]: %s\n", lead, tag, text)
		lead = "  "
	}
	if opts.ShowCount && e.Count() > 0 {
		fmt.Fprintf(w, "%d notes\n", e.Count())
	}
}

// AutoColor reports whether colored output is appropriate for f, i.e.
// whether f is a terminal.
func AutoColor(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
