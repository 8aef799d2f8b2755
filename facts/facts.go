// Package facts gathers data about the host environment, used by the info
// command.
package facts

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/zcalusic/sysinfo"
)

var (
	si     sysinfo.SysInfo
	siOnce sync.Once
)

type Facts struct {
	sysinfo.SysInfo
}

func Gather(ctx context.Context) (*Facts, error) {
	siOnce.Do(si.GetSysInfo)
	return &Facts{SysInfo: si}, nil
}

func (f *Facts) TextSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w, "os: %s %s\nkernel: %s %s\narch: %s\ncpu: %s (%d threads)\nmemory: %dMB\n",
		f.OS.Vendor, f.OS.Version,
		f.Kernel.Release, f.Kernel.Version,
		f.OS.Architecture,
		f.CPU.Model, f.CPU.Threads,
		f.Memory.Size)
	return err
}
