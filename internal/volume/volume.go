// Package volume reports usage of the filesystem holding a path.
package volume

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// Usage describes one mounted filesystem.
type Usage struct {
	Path         string
	Filesystem   string
	Total        uint64
	Used         uint64
	Free         uint64
	UsagePercent float64
}

// Stat returns usage for the filesystem containing path.
func Stat(ctx context.Context, path string) (*Usage, error) {
	if path == "" {
		path = "/"
	}

	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk usage for %s: %w", path, err)
	}

	return &Usage{
		Path:         path,
		Filesystem:   u.Fstype,
		Total:        u.Total,
		Used:         u.Used,
		Free:         u.Free,
		UsagePercent: u.UsedPercent,
	}, nil
}
