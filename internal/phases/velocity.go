package phases

import (
	"gonum.org/v1/gonum/stat"

	"github.com/apexform/motionlab/internal/pose"
)

// VelocityStats summarizes the velocity character of one frame range.
// Produced by AnalyzePhaseVelocity for diagnostics and tuning; not part
// of the phase list itself.
type VelocityStats struct {
	AverageVelocity float64 `json:"average_velocity"`
	MaxVelocity     float64 `json:"max_velocity"`
	MinVelocity     float64 `json:"min_velocity"`
	Variance        float64 `json:"variance"`
	SampleCount     int     `json:"sample_count"`
	IsStationary    bool    `json:"is_stationary"`
}

// AnalyzePhaseVelocity recomputes the velocity profile over just the
// given inclusive frame range and reports its statistics. IsStationary
// is true iff every sample in the slice sits below the velocity
// threshold. An independent diagnostic entry point: it never calls
// DetectPhases and imposes no minimum length.
func AnalyzePhaseVelocity(frames []pose.Frame, startFrame, endFrame int, cfg Config) VelocityStats {
	if startFrame < 0 {
		startFrame = 0
	}
	if endFrame > len(frames)-1 {
		endFrame = len(frames) - 1
	}
	if startFrame > endFrame {
		return VelocityStats{IsStationary: true}
	}

	weights := cfg.JointWeights
	if len(weights) == 0 {
		weights = DefaultJointWeights()
	}

	profile := velocityProfile(frames[startFrame:endFrame+1], weights)
	if len(profile) == 0 {
		return VelocityStats{IsStationary: true}
	}

	min := profile[0]
	max := profile[0]
	stationary := true
	for _, v := range profile {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		if v >= cfg.VelocityThreshold {
			stationary = false
		}
	}

	return VelocityStats{
		AverageVelocity: stat.Mean(profile, nil),
		MaxVelocity:     max,
		MinVelocity:     min,
		Variance:        stat.PopVariance(profile, nil),
		SampleCount:     len(profile),
		IsStationary:    stationary,
	}
}
