package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/michaelscutari/fsinfo/internal/volume"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show usage of the filesystem holding a path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		u, err := volume.Stat(cmd.Context(), path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Path:       %s\n", u.Path)
		if u.Filesystem != "" {
			fmt.Fprintf(out, "Filesystem: %s\n", u.Filesystem)
		}
		fmt.Fprintf(out, "Total:      %s\n", humanize.IBytes(u.Total))
		fmt.Fprintf(out, "Used:       %s (%.1f%%)\n", humanize.IBytes(u.Used), u.UsagePercent)
		fmt.Fprintf(out, "Free:       %s\n", humanize.IBytes(u.Free))
		return nil
	},
}
