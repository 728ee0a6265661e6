// Package diag carries the diagnostics reported while deriving bean classes:
// a closed catalog of message codes, per-locale message text, anchors that
// point back into the state declaration, and sinks that collect or print them.
package diag

import (
	"fmt"
	"sync"
)

// Severity of a diagnostic.
type Severity int

const (
	Note Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "note"
	}
}

// Position is a location in an input file. Line and Column are 1-based;
// zero means unknown.
type Position struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
}

func (p Position) IsValid() bool { return p.File != "" || p.Line > 0 }

func (p Position) String() string {
	switch {
	case p.File == "" && p.Line == 0:
		return "-"
	case p.Line == 0:
		return p.File
	case p.Column == 0:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
}

// Anchor identifies the element a diagnostic is about.
type Anchor struct {
	// Element is a short human description, e.g. "field count" or
	// "class com.example.FooState".
	Element string
	Pos     Position
	// Directive optionally narrows the anchor to an annotation on the
	// element, e.g. "@Property(access = WRITE_ONLY)".
	Directive    string
	DirectivePos Position
}

// Diagnostic is a single reported message.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Args     []any
	Anchor   Anchor
}

func (d Diagnostic) String() string {
	pos := d.Anchor.Pos
	if d.Anchor.DirectivePos.IsValid() {
		pos = d.Anchor.DirectivePos
	}
	s := fmt.Sprintf("%s: %s: [%s] %s", pos, d.Severity, d.Code, d.Message)
	if d.Anchor.Element != "" {
		s += " (" + d.Anchor.Element + ")"
	}
	return s
}

// New renders code in locale with args and returns the diagnostic.
func New(loc Locale, code Code, anchor Anchor, args ...any) Diagnostic {
	return Diagnostic{
		Severity: code.Severity(),
		Code:     code,
		Message:  code.Format(loc, args...),
		Args:     args,
		Anchor:   anchor,
	}
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// Collector accumulates diagnostics in report order. It is safe for
// concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Count returns the number of diagnostics with the given severity.
func (c *Collector) Count(s Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.diags {
		if d.Severity == s {
			n++
		}
	}
	return n
}

func (c *Collector) HasErrors() bool { return c.Count(Error) > 0 }

// Codes returns the codes reported so far, in order.
func (c *Collector) Codes() []Code {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Code, 0, len(c.diags))
	for _, d := range c.diags {
		out = append(out, d.Code)
	}
	return out
}

// FlushTo forwards every collected diagnostic to sink in order.
func (c *Collector) FlushTo(sink Sink) {
	for _, d := range c.Diagnostics() {
		sink.Report(d)
	}
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}
