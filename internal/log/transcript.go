package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Transcript records generated sources, one block per file.
type Transcript interface {
	Record(qualifiedName, origin, text string)
}

// transcript implements Transcript with serialized writes.
type transcript struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewTranscript creates a Transcript writing to w. If w is nil, returns a
// no-op transcript.
func NewTranscript(w io.Writer) Transcript {
	return &transcript{w: w, now: time.Now}
}

// Record writes a header line with timestamp, class and origin followed by
// the text. A missing trailing newline is added.
func (t *transcript) Record(qualifiedName, origin, text string) {
	if t.w == nil {
		return
	}
	if origin == "" {
		origin = "-"
	}
	block := fmt.Sprintf("=== %s %s from %s: %d bytes\n%s",
		t.now().Format("2006/01/02 15:04:05"),
		qualifiedName,
		origin,
		len(text),
		text)
	if len(text) > 0 && text[len(text)-1] != '\n' {
		block += "\n"
	}

	t.mu.Lock()
	_, _ = io.WriteString(t.w, block)
	t.mu.Unlock()
}
