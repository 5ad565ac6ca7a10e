// Package phases segments a landmark frame sequence into contiguous
// movement phases. Detection is a single-pass pipeline: weighted joint
// velocity profile → centered smoothing → thresholded local minima →
// boundary construction → short-phase merge → naming and confidence.
// The detector is a pure function of its inputs; it holds no state
// between calls and is safe for concurrent callers.
package phases

import "fmt"

// Config holds the tunable detection parameters. Callers supply a
// Config per invocation; the detector keeps nothing between calls.
type Config struct {
	// VelocityThreshold is the smoothed-velocity level below which a
	// local minimum counts as a phase boundary candidate (normalized
	// units per frame).
	VelocityThreshold float64
	// MinPhaseFrames is the minimum span of a phase in frames. Sequences
	// shorter than twice this skip analysis entirely.
	MinPhaseFrames int
	// SmoothingWindow is the centered moving-average window applied to
	// the raw velocity profile.
	SmoothingWindow int
	// MinPhaseSeparation is the minimum frame distance between accepted
	// minima; closer candidates are discarded, first-found wins.
	MinPhaseSeparation int
	// JointWeights maps landmark slot index to its contribution weight
	// in the velocity profile. Nil or empty falls back to
	// DefaultJointWeights.
	JointWeights map[int]float64
	// MergeShortPhases coalesces boundaries shorter than MinPhaseFrames
	// into their successors instead of dropping them.
	MergeShortPhases bool
	// Labeler overrides phase naming. Nil uses DefaultLabeler. The
	// built-in names are heuristic guesses at exercise structure, not
	// biomechanical truth, so callers may substitute their own.
	Labeler Labeler
}

// DefaultConfig returns the canonical detection parameters. These match
// config/tuning.defaults.json, which is the single source of truth for
// the file-configurable subset.
func DefaultConfig() Config {
	return Config{
		VelocityThreshold:  0.02,
		MinPhaseFrames:     10,
		SmoothingWindow:    5,
		MinPhaseSeparation: 15,
		JointWeights:       DefaultJointWeights(),
		MergeShortPhases:   true,
	}
}

// DefaultJointWeights favors the joints that carry the most signal for
// whole-body exercise movement: wrists highest, then shoulders and
// hips, ankles lowest. Returns a fresh map each call so callers can
// modify their copy freely.
func DefaultJointWeights() map[int]float64 {
	return map[int]float64{
		15: 1.0, // left wrist
		16: 1.0, // right wrist
		11: 0.8, // left shoulder
		12: 0.8, // right shoulder
		23: 0.8, // left hip
		24: 0.8, // right hip
		13: 0.6, // left elbow
		14: 0.6, // right elbow
		25: 0.5, // left knee
		26: 0.5, // right knee
		27: 0.3, // left ankle
		28: 0.3, // right ankle
	}
}

// Validate rejects configurations that would produce degenerate output.
// DetectPhases itself does not validate; callers loading user-supplied
// tuning files should validate at the boundary.
func (c Config) Validate() error {
	if c.VelocityThreshold <= 0 {
		return fmt.Errorf("velocity_threshold must be positive, got %g", c.VelocityThreshold)
	}
	if c.MinPhaseFrames <= 0 {
		return fmt.Errorf("min_phase_frames must be positive, got %d", c.MinPhaseFrames)
	}
	if c.SmoothingWindow <= 0 {
		return fmt.Errorf("smoothing_window must be positive, got %d", c.SmoothingWindow)
	}
	if c.MinPhaseSeparation < 0 {
		return fmt.Errorf("min_phase_separation must be non-negative, got %d", c.MinPhaseSeparation)
	}
	for idx, w := range c.JointWeights {
		if idx < 0 || idx >= landmarkSlots {
			return fmt.Errorf("joint weight index %d out of range", idx)
		}
		if w < 0 {
			return fmt.Errorf("joint weight for index %d is negative: %g", idx, w)
		}
	}
	return nil
}
