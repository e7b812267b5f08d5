package verify

import (
	"github.com/agbru/widearith/internal/config"
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/wide"
)

// SelectSuites determines which suites a run executes.
//
// In verify mode every width gets the arithmetic suites, plus the vector
// suite when kernel is a hardware kernel. In vector mode only the vector
// suite runs, and a scalar kernel yields simd.ErrUnsupported since there
// is nothing to compare it against.
func SelectSuites(cfg config.AppConfig, oracle Oracle, kernel simd.Kernel) ([]Suite, error) {
	hasHardware := kernel != nil && kernel.Name() != simd.Scalar().Name()

	if cfg.Mode == "vector" {
		if !hasHardware {
			return nil, simd.ErrUnsupported
		}
		return []Suite{VectorSuite(kernel)}, nil
	}

	suites, err := ArithmeticSuites(wide.Widths, oracle)
	if err != nil {
		return nil, err
	}
	if hasHardware {
		suites = append(suites, VectorSuite(kernel))
	}
	return suites, nil
}
