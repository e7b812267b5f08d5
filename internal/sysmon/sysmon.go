// Package sysmon provides system-wide CPU and memory usage sampling and the
// host CPU description recorded in calibration profiles.
package sysmon

import (
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

var (
	modelOnce sync.Once
	model     string
)

// CPUModel returns the model name of the first CPU, or "unknown" when the
// platform does not report one. The lookup runs once per process.
func CPUModel() string {
	modelOnce.Do(func() {
		model = "unknown"
		infos, err := cpu.Info()
		if err != nil || len(infos) == 0 {
			return
		}
		if name := strings.TrimSpace(infos[0].ModelName); name != "" {
			model = name
		}
	})
	return model
}
