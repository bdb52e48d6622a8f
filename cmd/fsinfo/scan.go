package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/michaelscutari/fsinfo/internal/analysis"
	"github.com/spf13/cobra"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory, write the report and open the charts",
	Long: `Scan a directory tree without prompting. The PDF report is written
and the chart window opened unless disabled with --no-report or --no-ui.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

var (
	scanRoot     string
	scanNoUI     bool
	scanNoReport bool
	scanTree     bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanRoot, "root", "r", ".", "Root directory to scan")
	scanCmd.Flags().BoolVar(&scanNoUI, "no-ui", false, "Print the summary only, do not open the chart window")
	scanCmd.Flags().BoolVar(&scanNoReport, "no-report", false, "Do not write the PDF report")
	scanCmd.Flags().BoolVar(&scanTree, "tree", false, "Print the directory tree after the summary")
}

func runScan(cmd *cobra.Command, args []string) error {
	root := scanRoot
	if len(args) == 1 {
		root = args[0]
	}

	s := loadSettings(cfg)
	logger := newLogger(s.Verbose)
	opts, err := s.scanOptions(logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; !ok {
			return
		}
		fmt.Fprintln(os.Stderr, "\nCanceling... (press Ctrl+C again to force)")
		cancel()
		<-sigCh
		os.Exit(130)
	}()

	mgr := analysis.NewManager(s.ReportPath)
	mgr.SetLogger(logger)
	mgr.SetSkipReport(scanNoReport)

	var lastFiles, lastErrors, lastBytes int64
	var stage atomic.Value
	stage.Store("scan")
	opts.WithProgress(func(files, errs int64, totalBytes int64) {
		atomic.StoreInt64(&lastFiles, files)
		atomic.StoreInt64(&lastErrors, errs)
		atomic.StoreInt64(&lastBytes, totalBytes)
	})
	mgr.SetStageFunc(func(st string) {
		if st != "" {
			stage.Store(st)
		}
	})

	isTTY := isTerminal()
	startTime := time.Now()
	progressDone := make(chan struct{})
	if isTTY {
		go func() {
			ticker := time.NewTicker(80 * time.Millisecond)
			defer ticker.Stop()
			spinnerIdx := 0
			for {
				select {
				case <-progressDone:
					return
				case <-ticker.C:
					spinner := spinnerFrames[spinnerIdx%len(spinnerFrames)]
					spinnerIdx++
					elapsed := time.Since(startTime).Round(time.Millisecond)
					stageStr, _ := stage.Load().(string)
					if stageStr != "scan" {
						fmt.Fprintf(os.Stderr, "\r\033[K%s %s... | %s", spinner, stageStr, elapsed)
						continue
					}
					errStr := ""
					if n := atomic.LoadInt64(&lastErrors); n > 0 {
						errStr = fmt.Sprintf(" | %d errors", n)
					}
					fmt.Fprintf(os.Stderr, "\r\033[K%s Scanning... %s files | %s | %s%s",
						spinner,
						humanize.Comma(atomic.LoadInt64(&lastFiles)),
						humanize.IBytes(uint64(atomic.LoadInt64(&lastBytes))),
						elapsed, errStr)
				}
			}
		}()
	}

	a, err := mgr.Run(ctx, root, opts)
	close(progressDone)
	if isTTY {
		fmt.Fprintf(os.Stderr, "\r\033[K")
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Scan canceled.")
			return nil
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if a.Empty() {
		fmt.Fprintln(out, "No files found in the specified directory.")
		return nil
	}

	printSummary(cmd, a)
	if scanTree {
		fmt.Fprintln(out)
		if err := a.Scan.Tree.Render(out); err != nil {
			return err
		}
	}

	if a.ReportPath != "" {
		fmt.Fprintf(out, "\nPDF report saved as %s\n", a.ReportPath)
	}

	if !scanNoUI && isTTY {
		if err := runUI(a); err != nil {
			return err
		}
	}

	if a.ReportErr != nil {
		return fmt.Errorf("report failed: %w", a.ReportErr)
	}
	return nil
}

func printSummary(cmd *cobra.Command, a *analysis.Analysis) {
	out := cmd.OutOrStdout()
	totals := a.Summary.Totals

	fmt.Fprintf(out, "Scanned %s in %s\n", a.Scan.Root, a.Scan.Duration.Round(time.Millisecond))
	fmt.Fprintf(out, "\nSummary:\n")
	fmt.Fprintf(out, "  Files: %s\n", humanize.Comma(totals.Files))
	fmt.Fprintf(out, "  Apparent size: %s\n", humanize.IBytes(uint64(totals.Bytes)))
	fmt.Fprintf(out, "  Total (KB): %s\n", humanize.CommafWithDigits(totals.SizeKB(), 2))
	if n := len(a.Scan.Errors); n > 0 {
		fmt.Fprintf(out, "  Errors: %d\n", n)
	}
	if v := a.Volume; v != nil {
		fmt.Fprintf(out, "  Volume: %s of %s used (%.1f%%)\n",
			humanize.IBytes(v.Used), humanize.IBytes(v.Total), v.UsagePercent)
	}
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
