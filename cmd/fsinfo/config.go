package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/michaelscutari/fsinfo/internal/report"
	"github.com/michaelscutari/fsinfo/internal/scan"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     = newConfig()
)

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("report.path", report.DefaultFilename)
	v.SetDefault("scan.sniff", false)
	v.SetDefault("scan.strict", false)
	v.SetDefault("scan.max_errors", 0)
	v.SetDefault("scan.exclude", []string{})
	v.SetDefault("scan.ignore_file", "")
	v.SetDefault("scan.gitignore", false)
	v.SetDefault("log.verbose", false)
	return v
}

func bindFlag(key, flag string) {
	if err := cfg.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind %s: %v", flag, err))
	}
}

func initConfig() {
	if cfgFile != "" {
		cfg.SetConfigFile(cfgFile)
	} else {
		cfg.SetConfigName(".fsinfo")
		cfg.SetConfigType("yaml")
		cfg.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			cfg.AddConfigPath(home)
		}
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: failed to read config: %v\n", err)
		}
	}
}

// settings is the resolved configuration for one run.
type settings struct {
	ReportPath string
	Sniff      bool
	Strict     bool
	MaxErrors  int
	Exclude    []string
	IgnoreFile string
	Gitignore  bool
	Verbose    bool
}

func loadSettings(v *viper.Viper) settings {
	s := settings{
		ReportPath: v.GetString("report.path"),
		Sniff:      v.GetBool("scan.sniff"),
		Strict:     v.GetBool("scan.strict"),
		MaxErrors:  v.GetInt("scan.max_errors"),
		Exclude:    v.GetStringSlice("scan.exclude"),
		IgnoreFile: v.GetString("scan.ignore_file"),
		Gitignore:  v.GetBool("scan.gitignore"),
		Verbose:    v.GetBool("log.verbose"),
	}
	if s.ReportPath == "" {
		s.ReportPath = report.DefaultFilename
	}
	return s
}

func (s settings) scanOptions(logger *slog.Logger) (*scan.ScanOptions, error) {
	opts := scan.DefaultOptions().
		WithSniff(s.Sniff).
		WithStrict(s.Strict).
		WithMaxErrors(s.MaxErrors).
		WithGitignore(s.Gitignore).
		WithLogger(logger)

	for _, pattern := range s.Exclude {
		if err := opts.AddExcludePattern(pattern); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}
	if s.IgnoreFile != "" {
		if err := opts.SetIgnoreFile(s.IgnoreFile); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
