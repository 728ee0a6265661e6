// Package processor runs state declarations through extraction, emission
// and the filer.
package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/Alia5/beangen/internal/diag"
	"github.com/Alia5/beangen/internal/filer"
	"github.com/Alia5/beangen/internal/log"
	"github.com/Alia5/beangen/internal/source"
)

// Summary counts the outcome of a run.
type Summary struct {
	Declarations int
	Generated    int
	Skipped      int
	Errors       int
	Warnings     int
}

type Processor struct {
	Extractor *beans.Extractor
	Emitter   *beans.Emitter
	Filer     filer.Filer
	// Jobs bounds the number of declarations processed concurrently.
	// Values below one mean one per CPU.
	Jobs       int
	Logger     *slog.Logger
	Transcript log.Transcript
}

func New(loc diag.Locale, version string, f filer.Filer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Processor{
		Extractor:  beans.NewExtractor(loc, logger),
		Emitter:    beans.NewEmitter(loc, version),
		Filer:      f,
		Jobs:       1,
		Logger:     logger,
		Transcript: log.NewTranscript(nil),
	}
}

type result struct {
	diags     diag.Collector
	name      string
	text      string
	generated string
}

// Run processes decls and reports their diagnostics to sink in the order
// of decls, regardless of how many run at once. Extraction and rendering
// run concurrently; sources are handed to the filer afterwards in the
// order of decls, so when two declarations map to the same bean class the
// first one wins. The returned error is only set when ctx is cancelled.
func (p *Processor) Run(ctx context.Context, decls []source.Declaration, sink diag.Sink) (Summary, error) {
	jobs := p.Jobs
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]result, len(decls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range decls {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.render(decls[i], &results[i])
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		for i := range results {
			p.commit(decls[i], &results[i])
		}
	}

	sum := Summary{Declarations: len(decls)}
	for i := range results {
		r := &results[i]
		if sink != nil {
			r.diags.FlushTo(sink)
		}
		sum.Errors += r.diags.Count(diag.Error)
		sum.Warnings += r.diags.Count(diag.Warning)
		if r.generated != "" {
			sum.Generated++
		} else {
			sum.Skipped++
		}
	}
	if err != nil {
		return sum, fmt.Errorf("processing cancelled: %w", err)
	}
	p.Logger.Debug("Processing complete",
		"declarations", sum.Declarations,
		"generated", sum.Generated,
		"skipped", sum.Skipped,
		"errors", sum.Errors,
		"warnings", sum.Warnings)
	return sum, nil
}

func (p *Processor) render(d source.Declaration, r *result) {
	decl := d.Class.Class()
	m := p.Extractor.Extract(d.Class, &r.diags)
	if m == nil || r.diags.HasErrors() {
		p.Logger.Debug("Skipping declaration", "class", decl.QualifiedName, "path", d.Path)
		return
	}

	name := m.QualifiedBeanClassName()
	text, err := p.Emitter.Render(m)
	if err != nil {
		p.reportWrite(d, r, name, err)
		return
	}
	r.name = name
	r.text = text
	p.Logger.Debug("Rendered bean class", "class", name, "properties", m.Properties.Len())
}

func (p *Processor) commit(d source.Declaration, r *result) {
	if r.text == "" {
		return
	}
	if err := p.write(r.name, d.Path, r.text); err != nil {
		p.reportWrite(d, r, r.name, err)
		return
	}
	p.Logger.Info("Generated bean class", "class", r.name, "path", d.Path)
	r.generated = r.name
}

func (p *Processor) reportWrite(d source.Declaration, r *result, name string, err error) {
	decl := d.Class.Class()
	anchor := diag.Anchor{Element: "class " + decl.QualifiedName, Pos: decl.Pos}
	r.diags.Report(diag.New(p.Extractor.Locale, diag.APT0000, anchor, name, err))
}

func (p *Processor) write(name, origin, text string) error {
	w, err := p.Filer.CreateSource(name, origin)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if p.Transcript != nil {
		p.Transcript.Record(name, origin, text)
	}
	return nil
}
