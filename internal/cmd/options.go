package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/beangen/internal/diag"
	"github.com/Alia5/beangen/internal/filer"
	"github.com/Alia5/beangen/internal/log"
	"github.com/Alia5/beangen/internal/processor"
	"github.com/Alia5/beangen/internal/source"
	"github.com/Alia5/beangen/internal/version"
)

// Options are shared by the commands that process state declarations.
type Options struct {
	Output string `help:"Root directory of the generated sources" short:"o" default:"." type:"path" env:"BEANGEN_OUTPUT"`
	Jobs   int    `help:"Declarations processed in parallel (0 = one per CPU)" short:"j" default:"0" env:"BEANGEN_JOBS"`
	Locale string `help:"Language of diagnostics and generated documentation, e.g. en or ja (defaults to $LANG)" env:"BEANGEN_LOCALE"`
	Color  string `help:"Colorize diagnostics" enum:"auto,always,never" default:"auto" env:"BEANGEN_COLOR"`
}

// locale resolves the configured locale, falling back to the POSIX locale
// environment.
func (o *Options) locale() diag.Locale {
	if o.Locale != "" {
		return diag.MatchLocale(o.Locale)
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return diag.MatchLocale(posixLocale(v))
		}
	}
	return diag.Root
}

// posixLocale turns "ja_JP.UTF-8@euro" into "ja-JP".
func posixLocale(v string) string {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "C" || v == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(v, "_", "-")
}

func (o *Options) printer(w io.Writer) *diag.Printer {
	p := diag.NewPrinter(w)
	switch o.Color {
	case "always":
		p.SetColor(true)
	case "never":
		p.SetColor(false)
	}
	return p
}

// process loads paths and runs every declaration through f. Diagnostics go
// to stderr.
func (o *Options) process(ctx context.Context, logger *slog.Logger, tr log.Transcript, stderr io.Writer, paths []string, f filer.Filer) (processor.Summary, error) {
	ver, err := version.GetVersion()
	if err != nil {
		return processor.Summary{}, err
	}
	loc := o.locale()
	printer := o.printer(stderr)

	var loadDiags diag.Collector
	decls := source.NewLoader(loc, logger).Load(paths, diag.Tee{printer, &loadDiags})
	logger.Debug("Declarations discovered", "count", len(decls), "locale", loc.String())

	p := processor.New(loc, ver, f, logger)
	p.Jobs = o.Jobs
	if tr != nil {
		p.Transcript = tr
	}
	sum, err := p.Run(ctx, decls, printer)
	sum.Errors += loadDiags.Count(diag.Error)
	sum.Warnings += loadDiags.Count(diag.Warning)
	return sum, err
}
