package config

import "runtime"

// Worker resolution chain (highest priority first):
//   1. CLI flag (--workers)
//   2. Environment variable (WIDEARITH_WORKERS)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveDefaults fills the settings left at their zero default with
// values derived from the hardware. User-specified values are preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers()
	}
	return cfg
}

// EstimateOptimalWorkers picks a verification worker count from the CPU
// count, capped at 16.
func EstimateOptimalWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 4:
		return numCPU
	case numCPU <= 16:
		return numCPU - 1 // leave a core for the progress display
	default:
		return 16
	}
}
