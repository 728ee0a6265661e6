package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/beangen/internal/filer"
	"github.com/Alia5/beangen/internal/log"
)

// Check verifies that the generated sources below the output root are up
// to date without writing anything.
type Check struct {
	Options `embed:""`
	Paths   []string `arg:"" name:"path" help:"Java sources, descriptor files or directories containing them" type:"path"`
	Quiet   bool     `help:"List stale files without printing diffs" short:"q"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger, tr log.Transcript) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.Execute(ctx, logger, tr, os.Stdout)
}

func (c *Check) Execute(ctx context.Context, logger *slog.Logger, tr log.Transcript, out io.Writer) error {
	cf := filer.NewCheckFiler(c.Output)
	sum, err := c.process(ctx, logger, tr, os.Stderr, c.Paths, cf)
	if err != nil {
		return err
	}

	stale := cf.Stale()
	for _, s := range stale {
		state := "out of date"
		if s.Missing {
			state = "missing"
		}
		if c.Quiet {
			fmt.Fprintf(out, "%s: %s\n", s.Path, state)
			continue
		}
		fmt.Fprintf(out, "# %s (%s, from %s)\n%s", s.Path, state, s.Origin, s.Diff)
	}
	logger.Info("Check complete", "checked", cf.Checked(), "stale", len(stale), "errors", sum.Errors)

	switch {
	case sum.Errors > 0:
		return fmt.Errorf("%d error(s) reported", sum.Errors)
	case len(stale) > 0:
		return fmt.Errorf("%d of %d generated source(s) out of date", len(stale), cf.Checked())
	}
	return nil
}
