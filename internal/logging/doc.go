// Package logging wraps zerolog behind a small Logger interface so the
// runner, the metrics server and calibration log structured fields without
// depending on zerolog directly.
package logging
