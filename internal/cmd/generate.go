package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/beangen/internal/filer"
	"github.com/Alia5/beangen/internal/log"
)

type Generate struct {
	Options `embed:""`
	Paths   []string `arg:"" name:"path" help:"Java sources, descriptor files or directories containing them" type:"path"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, tr log.Transcript) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return g.Execute(ctx, logger, tr)
}

func (g *Generate) Execute(ctx context.Context, logger *slog.Logger, tr log.Transcript) error {
	logger.Info("Generating bean classes", "output", g.Output, "inputs", len(g.Paths))

	sum, err := g.process(ctx, logger, tr, os.Stderr, g.Paths, filer.NewDirFiler(g.Output, logger))
	if err != nil {
		return err
	}
	logger.Info("Generation complete",
		"generated", sum.Generated,
		"skipped", sum.Skipped,
		"errors", sum.Errors,
		"warnings", sum.Warnings)
	if sum.Errors > 0 {
		return fmt.Errorf("%d error(s) reported", sum.Errors)
	}
	return nil
}
