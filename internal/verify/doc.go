// Package verify cross-checks the arithmetic implementations against each
// other and against a big-integer oracle. It splits each suite's cases
// across worker goroutines, reports progress on a channel, and stops a
// suite at its first mismatch.
package verify
