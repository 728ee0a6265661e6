package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31;1m"
	ansiYellow = "\x1b[33;1m"
	ansiCyan   = "\x1b[36m"
)

// Printer writes diagnostics one per line in compiler style:
//
//	src/Foo.java:12:5: error: [FLD0003] a final field cannot be WRITE_ONLY (field count)
//
// Severity labels are colored when the writer is a terminal.
type Printer struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w. Color is enabled when w is an
// *os.File attached to a terminal.
func NewPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{w: w, color: color}
}

// SetColor forces color on or off.
func (p *Printer) SetColor(on bool) { p.color = on }

func (p *Printer) Report(d Diagnostic) {
	pos := d.Anchor.Pos
	if d.Anchor.DirectivePos.IsValid() {
		pos = d.Anchor.DirectivePos
	}
	label := d.Severity.String()
	if p.color {
		switch d.Severity {
		case Error:
			label = ansiRed + label + ansiReset
		case Warning:
			label = ansiYellow + label + ansiReset
		default:
			label = ansiCyan + label + ansiReset
		}
	}
	line := fmt.Sprintf("%s: %s: [%s] %s", pos, label, d.Code, d.Message)
	if d.Anchor.Element != "" {
		line += " (" + d.Anchor.Element + ")"
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, line)
}

// Tee fans diagnostics out to several sinks.
type Tee []Sink

func (t Tee) Report(d Diagnostic) {
	for _, s := range t {
		s.Report(d)
	}
}
