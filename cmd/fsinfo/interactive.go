package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/michaelscutari/fsinfo/internal/analysis"
	"github.com/michaelscutari/fsinfo/internal/scan"
	"github.com/spf13/cobra"
)

const promptText = "Enter the directory path: "

// showFunc presents a finished analysis to the user.
type showFunc func(a *analysis.Analysis) error

func runInteractive(cmd *cobra.Command, args []string) error {
	s := loadSettings(cfg)
	logger := newLogger(s.Verbose)
	interactive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s, logger, runUI)
	return nil
}

// interactive prompts for a directory, analyzes it and hands the result to
// show. Every failure is printed to out; none is returned.
func interactive(ctx context.Context, in io.Reader, out io.Writer, s settings, logger *slog.Logger, show showFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprint(out, promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
		return
	}
	root := strings.TrimSpace(line)

	opts, err := s.scanOptions(logger)
	if err != nil {
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
		return
	}

	mgr := analysis.NewManager(s.ReportPath)
	mgr.SetLogger(logger)

	a, err := mgr.Run(ctx, root, opts)
	switch {
	case errors.Is(err, scan.ErrNotFound):
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	case err != nil:
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
		return
	}

	if a.Empty() {
		fmt.Fprintln(out, "No files found in the specified directory.")
		return
	}

	if a.ReportErr != nil {
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", a.ReportErr)
	} else {
		fmt.Fprintf(out, "PDF report saved as %s\n", a.ReportPath)
	}

	if show == nil {
		return
	}
	if err := show(a); err != nil {
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
	}
}
