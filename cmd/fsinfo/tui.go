package main

import (
	"fmt"

	"github.com/michaelscutari/fsinfo/internal/analysis"
	"github.com/michaelscutari/fsinfo/internal/tui"
)

func uiOptions(a *analysis.Analysis) tui.Options {
	opts := tui.Options{
		Root:   a.Scan.Root,
		Tree:   a.Scan.Tree,
		Volume: a.Volume,
	}
	if a.Summary != nil {
		opts.Charts = a.Summary.Charts()
		opts.Totals = a.Summary.Totals
	}
	return opts
}

func runUI(a *analysis.Analysis) error {
	if err := tui.Run(tui.NewModel(uiOptions(a))); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
