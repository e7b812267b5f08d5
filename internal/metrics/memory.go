package metrics

import "runtime"

// MemorySnapshot is a point-in-time reading of the Go runtime.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes of live heap objects
	HeapSys      uint64 // heap bytes obtained from the OS
	Sys          uint64
	NumGC        uint32
	PauseTotalNs uint64
	HeapObjects  uint64
	Goroutines   int
}

// MemoryCollector reads runtime memory statistics. It stops the world
// briefly, so callers sample it between suites or on a slow tick.
type MemoryCollector struct{}

// NewMemoryCollector creates a collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
		Goroutines:   runtime.NumGoroutine(),
	}
}

// Since returns the GC cycles and pause time accumulated between before
// and s. The gauges of s are kept as they are.
func (s MemorySnapshot) Since(before MemorySnapshot) MemorySnapshot {
	s.NumGC -= before.NumGC
	s.PauseTotalNs -= before.PauseTotalNs
	return s
}
