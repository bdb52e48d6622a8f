package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fsinfo",
	Short: "Tabulate a directory tree and report on it",
	Long: `fsinfo walks a directory tree, records the size and type of every
file, charts the totals per type and per folder in a terminal window and
writes a PDF listing of every file.

Run without a subcommand to be prompted for the directory.`,
	Args:          cobra.NoArgs,
	RunE:          runInteractive,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is ./.fsinfo.yaml or $HOME/.fsinfo.yaml)")
	rootCmd.PersistentFlags().StringP("out", "o", "", "PDF report path (default file_analysis_report.pdf)")
	rootCmd.PersistentFlags().Bool("sniff", false, "Identify files with unknown extensions by their content")
	rootCmd.PersistentFlags().Bool("strict", false, "Abort on the first unreadable entry instead of skipping it")
	rootCmd.PersistentFlags().Int("max-errors", 0, "Stop after N errors (0 = unlimited)")
	rootCmd.PersistentFlags().StringSliceP("exclude", "e", nil, "Regex patterns to exclude (can be repeated)")
	rootCmd.PersistentFlags().String("ignore-file", "", "File of gitignore-style patterns to skip")
	rootCmd.PersistentFlags().Bool("gitignore", false, "Honor the .gitignore at the scan root")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	bindFlag("report.path", "out")
	bindFlag("scan.sniff", "sniff")
	bindFlag("scan.strict", "strict")
	bindFlag("scan.max_errors", "max-errors")
	bindFlag("scan.exclude", "exclude")
	bindFlag("scan.ignore_file", "ignore-file")
	bindFlag("scan.gitignore", "gitignore")
	bindFlag("log.verbose", "verbose")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(infoCmd)
}
