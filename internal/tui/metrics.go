package tui

import (
	"fmt"
	"strings"
)

// sparklineSamples is the number of host samples kept for the sparklines.
const sparklineSamples = 60

// MetricsModel renders runtime and host resource usage.
type MetricsModel struct {
	alloc      uint64
	heapSys    uint64
	numGC      uint32
	goroutines int
	cpu        *RingBuffer
	mem        *RingBuffer
	width      int
	height     int
}

// NewMetricsModel creates an empty metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		cpu: NewRingBuffer(sparklineSamples),
		mem: NewRingBuffer(sparklineSamples),
	}
}

// SetSize updates the panel dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width, m.height = w, h
}

// UpdateMemStats records a runtime memory sample.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.goroutines = msg.NumGoroutine
}

// UpdateSysStats records a host sample.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.cpu.Push(msg.CPUPercent)
	m.mem.Push(msg.MemPercent)
}

// View renders the panel.
func (m MetricsModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render("Resources"))
	fmt.Fprintf(&b, "Heap %s / %s  GC %s  Goroutines %s\n",
		metricValueStyle.Render(formatMB(m.alloc)),
		metricValueStyle.Render(formatMB(m.heapSys)),
		metricValueStyle.Render(fmt.Sprint(m.numGC)),
		metricValueStyle.Render(fmt.Sprint(m.goroutines)))

	sparkW := max(m.width-20, 1)
	fmt.Fprintf(&b, "CPU %5.1f%% %s\n", m.cpu.Last(), cpuSparklineStyle.Render(RenderSparkline(tail(m.cpu.Slice(), sparkW), 100)))
	fmt.Fprintf(&b, "MEM %5.1f%% %s", m.mem.Last(), memSparklineStyle.Render(RenderSparkline(tail(m.mem.Slice(), sparkW), 100)))
	return panelStyle.Width(max(m.width-2, 0)).Render(b.String())
}

func tail(v []float64, n int) []float64 {
	if len(v) > n {
		return v[len(v)-n:]
	}
	return v
}

func formatMB(b uint64) string {
	return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
}
