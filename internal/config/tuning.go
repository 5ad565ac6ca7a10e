// Package config loads detection tuning parameters from JSON. Fields
// are pointer-typed so a partial file overrides only what it names; the
// Get* accessors fall back to the canonical defaults for everything
// else.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apexform/motionlab/internal/phases"
	"github.com/apexform/motionlab/internal/pose"
)

// DefaultConfigPath is the path to the canonical tuning defaults file,
// the single source of truth for default detection values.
const DefaultConfigPath = "config/tuning.defaults.json"

// TuningConfig is the file-level representation of the detection
// parameters. Joint weights are keyed by canonical landmark name
// (e.g. "left_wrist") rather than slot index so the file stays
// readable.
type TuningConfig struct {
	VelocityThreshold  *float64           `json:"velocity_threshold,omitempty"`
	MinPhaseFrames     *int               `json:"min_phase_frames,omitempty"`
	SmoothingWindow    *int               `json:"smoothing_window,omitempty"`
	MinPhaseSeparation *int               `json:"min_phase_separation,omitempty"`
	MergeShortPhases   *bool              `json:"merge_short_phases,omitempty"`
	JointWeights       map[string]float64 `json:"joint_weights,omitempty"`

	// Session-level parameters used by the CLIs rather than the
	// detector itself.
	SampleRateHz *float64 `json:"sample_rate_hz,omitempty"`
	Use2DAngles  *bool    `json:"use_2d_angles,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with every field unset.
// The Get* accessors then answer with defaults.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

func (c *TuningConfig) GetVelocityThreshold() float64 {
	if c.VelocityThreshold != nil {
		return *c.VelocityThreshold
	}
	return 0.02
}

func (c *TuningConfig) GetMinPhaseFrames() int {
	if c.MinPhaseFrames != nil {
		return *c.MinPhaseFrames
	}
	return 10
}

func (c *TuningConfig) GetSmoothingWindow() int {
	if c.SmoothingWindow != nil {
		return *c.SmoothingWindow
	}
	return 5
}

func (c *TuningConfig) GetMinPhaseSeparation() int {
	if c.MinPhaseSeparation != nil {
		return *c.MinPhaseSeparation
	}
	return 15
}

func (c *TuningConfig) GetMergeShortPhases() bool {
	if c.MergeShortPhases != nil {
		return *c.MergeShortPhases
	}
	return true
}

func (c *TuningConfig) GetSampleRateHz() float64 {
	if c.SampleRateHz != nil {
		return *c.SampleRateHz
	}
	return 30
}

func (c *TuningConfig) GetUse2DAngles() bool {
	if c.Use2DAngles != nil {
		return *c.Use2DAngles
	}
	return false
}

// GetJointWeights resolves the named weight table to slot indices.
// An unset table answers with the detector defaults.
func (c *TuningConfig) GetJointWeights() map[int]float64 {
	if len(c.JointWeights) == 0 {
		return phases.DefaultJointWeights()
	}
	out := make(map[int]float64, len(c.JointWeights))
	for name, w := range c.JointWeights {
		if idx, ok := pose.LandmarkIndex(name); ok {
			out[idx] = w
		}
	}
	return out
}

// DetectionConfig converts the tuning file into the detector's config
// value.
func (c *TuningConfig) DetectionConfig() phases.Config {
	return phases.Config{
		VelocityThreshold:  c.GetVelocityThreshold(),
		MinPhaseFrames:     c.GetMinPhaseFrames(),
		SmoothingWindow:    c.GetSmoothingWindow(),
		MinPhaseSeparation: c.GetMinPhaseSeparation(),
		JointWeights:       c.GetJointWeights(),
		MergeShortPhases:   c.GetMergeShortPhases(),
	}
}

// Validate rejects configurations that would produce degenerate
// detection output, plus joint weight names that don't resolve to a
// landmark slot.
func (c *TuningConfig) Validate() error {
	for name := range c.JointWeights {
		if _, ok := pose.LandmarkIndex(name); !ok {
			return fmt.Errorf("unknown landmark name %q in joint_weights", name)
		}
	}
	if c.SampleRateHz != nil && *c.SampleRateHz <= 0 {
		return fmt.Errorf("sample_rate_hz must be positive, got %g", *c.SampleRateHz)
	}
	return c.DetectionConfig().Validate()
}

// LoadTuningConfig loads a TuningConfig from a JSON file. Fields
// omitted from the file retain their defaults, so partial configs are
// safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical tuning defaults from
// DefaultConfigPath, searching upward from the current directory.
// Panics if the file cannot be loaded; intended for test setup.
func MustLoadDefaultConfig() *TuningConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/<pkg>/
		"../../../" + DefaultConfigPath,
		"../../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadTuningConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}
