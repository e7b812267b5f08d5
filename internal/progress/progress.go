// Package progress defines the progress message exchanged between the
// verification runner and its displays.
package progress

// ProgressUpdate reports how far one suite has advanced.
type ProgressUpdate struct {
	// SuiteIndex identifies the suite within the current run.
	SuiteIndex int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}
