package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/sysmon"
	"github.com/agbru/widearith/internal/wide"
)

const (
	// DefaultProfileFileName is the file name used under the home directory.
	DefaultProfileFileName = ".widearith_calibration.json"
	// CurrentProfileVersion is bumped whenever the profile layout changes.
	CurrentProfileVersion = 1
	// DefaultMaxProfileAge is how long a profile is trusted before the
	// application suggests recalibrating.
	DefaultMaxProfileAge = 30 * 24 * time.Hour
)

// CalibrationProfile records the hardware a calibration ran on and the
// strategies it chose.
type CalibrationProfile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	NumCPU      int    `json:"num_cpu"`
	GOARCH      string `json:"goarch"`
	GOOS        string `json:"goos"`
	GoVersion   string `json:"go_version"`
	WordSize    int    `json:"word_size"`
	CPUModel    string `json:"cpu_model"`
	CPUFeatures string `json:"cpu_features"`
	SIMDLevel   string `json:"simd_level"`

	// MulStrategy128 and MulStrategy256 hold wide.MulStrategy names.
	MulStrategy128  string `json:"mul_strategy_128"`
	MulStrategy256  string `json:"mul_strategy_256"`
	PreferredKernel string `json:"preferred_kernel"`

	CalibrationIterations int    `json:"calibration_iterations"`
	CalibrationTime       string `json:"calibration_time"`
}

// NewProfile returns a profile describing the current host with the
// strategies currently in effect.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion:  CurrentProfileVersion,
		CalibratedAt:    time.Now(),
		NumCPU:          runtime.NumCPU(),
		GOARCH:          runtime.GOARCH,
		GOOS:            runtime.GOOS,
		GoVersion:       runtime.Version(),
		WordSize:        32 << (^uint(0) >> 63),
		CPUModel:        sysmon.CPUModel(),
		CPUFeatures:     simd.GetCPUFeatures().String(),
		SIMDLevel:       simd.GetSIMDLevel().String(),
		MulStrategy128:  wide.GetMulStrategy(128).String(),
		MulStrategy256:  wide.GetMulStrategy(256).String(),
		PreferredKernel: simd.Best().Name(),
	}
}

// SaveProfile writes the profile as indented JSON, creating parent
// directories as needed.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "creating profile directory")
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return apperrors.WrapError(err, "encoding profile")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.WrapError(err, "writing profile")
	}
	return nil
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.WrapError(err, "decoding profile %s", path)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path. When the file is missing,
// unreadable or was written for different hardware, it returns a fresh
// profile and false.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return NewProfile(), false
	}
	return p, true
}

// IsValid reports whether the profile was produced by this profile version
// on hardware matching the current host.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	if p.ProfileVersion != CurrentProfileVersion {
		return false
	}
	if p.NumCPU != runtime.NumCPU() || p.GOARCH != runtime.GOARCH {
		return false
	}
	if p.WordSize != 32<<(^uint(0)>>63) {
		return false
	}
	if _, err := wide.ParseMulStrategy(p.MulStrategy128); err != nil {
		return false
	}
	if _, err := wide.ParseMulStrategy(p.MulStrategy256); err != nil {
		return false
	}
	return true
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// Apply installs the profile's multiplication strategies.
func (p *CalibrationProfile) Apply() error {
	for _, entry := range []struct {
		width int
		name  string
	}{
		{128, p.MulStrategy128},
		{256, p.MulStrategy256},
	} {
		s, err := wide.ParseMulStrategy(entry.name)
		if err != nil {
			return err
		}
		if err := wide.SetMulStrategy(entry.width, s); err != nil {
			return err
		}
	}
	return nil
}

func (p *CalibrationProfile) String() string {
	return fmt.Sprintf("CalibrationProfile{v%d, %s/%s, %d CPUs, %s, mul128=%s, mul256=%s, kernel=%s, calibrated %s}",
		p.ProfileVersion, p.GOOS, p.GOARCH, p.NumCPU, p.CPUModel,
		p.MulStrategy128, p.MulStrategy256, p.PreferredKernel,
		p.CalibratedAt.Format(time.RFC3339))
}

// GetDefaultProfilePath returns ~/.widearith_calibration.json, or the file
// name alone when the home directory cannot be determined.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// LoadCachedCalibration loads a valid profile from path (the default path
// when empty) and applies it. It returns the profile and whether one was
// applied.
func LoadCachedCalibration(path string) (*CalibrationProfile, bool) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return nil, false
	}
	if err := p.Apply(); err != nil {
		return nil, false
	}
	return p, true
}
