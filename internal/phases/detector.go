package phases

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/apexform/motionlab/internal/pose"
)

const landmarkSlots = pose.LandmarkCount

// minVisibility mirrors the angle engine's reliability cutoff: a joint
// is excluded from the velocity profile on any frame pair where either
// frame sees it below this.
const minVisibility = 0.5

// Confidence model constants.
const (
	confidenceFloor   = 0.3
	confidenceCeiling = 0.95
	// fullDurationFrames is the phase length at which the duration score
	// saturates (~2s at 30fps).
	fullDurationFrames = 60.0
	// highVelocityRatio marks a phase as an active (eccentric or
	// concentric) movement when its mean velocity exceeds this fraction
	// of the sequence peak.
	highVelocityRatio = 0.7
	// shortSequenceConfidence is the fixed score for sequences too short
	// to analyze.
	shortSequenceConfidence = 0.5
)

// DetectedPhase is one contiguous segment of a movement. Frame bounds
// are inclusive. Phases carry no identity across detection runs;
// downstream storage assigns its own IDs.
type DetectedPhase struct {
	Name       string  `json:"name"`
	StartFrame int     `json:"start_frame"`
	EndFrame   int     `json:"end_frame"`
	Confidence float64 `json:"confidence"`
}

// Result bundles the detected phases with the diagnostic signals the
// tuning and visualization layers need: both velocity profiles, the
// accepted minima, and sequence-level velocity summaries.
type Result struct {
	Phases          []DetectedPhase `json:"phases"`
	VelocityProfile []float64       `json:"velocity_profile"`
	SmoothedProfile []float64       `json:"smoothed_profile"`
	MinimaFrames    []int           `json:"minima_frames"`
	TotalFrames     int             `json:"total_frames"`
	AverageVelocity float64         `json:"average_velocity"`
	MaxVelocity     float64         `json:"max_velocity"`
}

// boundary is a half-built phase: an inclusive frame range awaiting
// naming and confidence scoring.
type boundary struct {
	start int
	end   int
}

// DetectPhases segments a frame sequence into movement phases.
//
// Sequences shorter than 2×MinPhaseFrames skip segmentation and come back
// as a single whole-sequence phase with fixed confidence, a deliberate
// simplification for clips too short to segment, not an error.
func DetectPhases(frames []pose.Frame, cfg Config) Result {
	total := len(frames)
	weights := cfg.JointWeights
	if len(weights) == 0 {
		weights = DefaultJointWeights()
	}

	labeler := cfg.Labeler
	if labeler == nil {
		labeler = DefaultLabeler
	}

	if total < 2*cfg.MinPhaseFrames {
		res := Result{TotalFrames: total}
		if total > 0 {
			// Too short to segment, but the lone phase still goes
			// through the labeler so overrides apply everywhere.
			profile := velocityProfile(frames, weights)
			res.Phases = []DetectedPhase{{
				Name: labeler(LabelContext{
					Index:             0,
					Count:             1,
					MeanVelocity:      sliceMean(profile),
					MaxVelocity:       sliceMax(profile),
					VelocityThreshold: cfg.VelocityThreshold,
				}),
				StartFrame: 0,
				EndFrame:   total - 1,
				Confidence: shortSequenceConfidence,
			}}
		}
		return res
	}

	profile := velocityProfile(frames, weights)
	smoothed := smooth(profile, cfg.SmoothingWindow)
	minima := findMinima(smoothed, cfg.VelocityThreshold, cfg.MinPhaseSeparation)

	boundaries := buildBoundaries(minima, total, cfg.MinPhaseFrames)
	if cfg.MergeShortPhases {
		boundaries = mergeShortBoundaries(boundaries, cfg.MinPhaseFrames)
	}

	maxV := sliceMax(smoothed)

	detected := make([]DetectedPhase, 0, len(boundaries))
	for i, b := range boundaries {
		meanV := sliceMean(smoothed[b.start : b.end+1])
		detected = append(detected, DetectedPhase{
			Name: labeler(LabelContext{
				Index:             i,
				Count:             len(boundaries),
				MeanVelocity:      meanV,
				MaxVelocity:       maxV,
				VelocityThreshold: cfg.VelocityThreshold,
			}),
			StartFrame: b.start,
			EndFrame:   b.end,
			Confidence: phaseConfidence(b.end-b.start, meanV, maxV),
		})
	}

	return Result{
		Phases:          detected,
		VelocityProfile: profile,
		SmoothedProfile: smoothed,
		MinimaFrames:    minima,
		TotalFrames:     total,
		AverageVelocity: sliceMean(profile),
		MaxVelocity:     sliceMax(profile),
	}
}

// velocityProfile computes the weighted mean 3D displacement of the
// configured joints between each consecutive frame pair. Joints with
// unreliable visibility in either frame are skipped; a pair with no
// usable joints contributes 0. The profile is prefixed with a 0 for
// frame 0, so its length equals the frame count.
func velocityProfile(frames []pose.Frame, weights map[int]float64) []float64 {
	profile := make([]float64, len(frames))
	for i := 1; i < len(frames); i++ {
		profile[i] = weightedVelocity(&frames[i-1], &frames[i], weights)
	}
	return profile
}

// weightedVelocity is the per-pair displacement aggregation.
func weightedVelocity(prev, curr *pose.Frame, weights map[int]float64) float64 {
	var sumDist, sumWeight float64
	for idx, w := range weights {
		if idx < 0 || idx >= landmarkSlots || w <= 0 {
			continue
		}
		if prev[idx].Visibility < minVisibility || curr[idx].Visibility < minVisibility {
			continue
		}
		dx := curr[idx].X - prev[idx].X
		dy := curr[idx].Y - prev[idx].Y
		dz := curr[idx].Z - prev[idx].Z
		sumDist += math.Sqrt(dx*dx+dy*dy+dz*dz) * w
		sumWeight += w
	}
	if sumWeight == 0 {
		return 0
	}
	return sumDist / sumWeight
}

// smooth applies a centered moving average. Windows are clamped to the
// sequence bounds, so edge samples average over an asymmetric window
// rather than zero padding.
func smooth(profile []float64, window int) []float64 {
	if window <= 1 {
		out := make([]float64, len(profile))
		copy(out, profile)
		return out
	}
	half := window / 2
	out := make([]float64, len(profile))
	for i := range profile {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(profile)-1 {
			hi = len(profile) - 1
		}
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += profile[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}

// findMinima returns interior frame indices that are local minima of
// the smoothed profile below the velocity threshold, keeping candidates
// at least minSeparation frames apart (first-found wins; closer
// candidates are discarded, not merged). A candidate must dip strictly
// below at least one neighbor: a flat run below threshold is stillness,
// not a boundary.
func findMinima(smoothed []float64, threshold float64, minSeparation int) []int {
	var minima []int
	lastAccepted := -1
	for i := 1; i < len(smoothed)-1; i++ {
		if smoothed[i] > smoothed[i-1] || smoothed[i] > smoothed[i+1] {
			continue
		}
		if smoothed[i] == smoothed[i-1] && smoothed[i] == smoothed[i+1] {
			continue
		}
		if smoothed[i] >= threshold {
			continue
		}
		if lastAccepted >= 0 && i-lastAccepted < minSeparation {
			continue
		}
		minima = append(minima, i)
		lastAccepted = i
	}
	return minima
}

// buildBoundaries converts minima into inclusive phase ranges. Leading
// and trailing segments are kept only when long enough; inter-minima
// segments need at least MinPhaseFrames. If everything is filtered out
// (or there were no minima at all) the whole sequence becomes one
// boundary.
func buildBoundaries(minima []int, totalFrames, minPhaseFrames int) []boundary {
	whole := []boundary{{start: 0, end: totalFrames - 1}}
	if len(minima) == 0 {
		return whole
	}

	var out []boundary
	if minima[0] > minPhaseFrames {
		out = append(out, boundary{start: 0, end: minima[0]})
	}
	for i := 0; i < len(minima)-1; i++ {
		if minima[i+1]-minima[i] >= minPhaseFrames {
			out = append(out, boundary{start: minima[i], end: minima[i+1]})
		}
	}
	last := minima[len(minima)-1]
	if totalFrames-1-last > minPhaseFrames {
		out = append(out, boundary{start: last, end: totalFrames - 1})
	}

	if len(out) == 0 {
		return whole
	}
	return out
}

// mergeShortBoundaries coalesces each boundary shorter than
// minPhaseFrames into its successor: the short boundary's start carries
// forward until a long-enough combined span accrues. The final boundary
// is always emitted even if the accumulated run stays short, so merging
// never drops coverage.
func mergeShortBoundaries(boundaries []boundary, minPhaseFrames int) []boundary {
	if len(boundaries) <= 1 {
		return boundaries
	}
	out := make([]boundary, 0, len(boundaries))
	carryStart := -1
	for i, b := range boundaries {
		start := b.start
		if carryStart >= 0 {
			start = carryStart
		}
		if b.end-start < minPhaseFrames && i < len(boundaries)-1 {
			carryStart = start
			continue
		}
		out = append(out, boundary{start: start, end: b.end})
		carryStart = -1
	}
	return out
}

// phaseConfidence scores a phase from its duration and how clearly its
// mean velocity separates from the sequence peak. Longer phases and
// deeper velocity troughs score higher; the result is clamped to
// [0.3, 0.95] so no phase ever presents as certain or worthless.
func phaseConfidence(durationFrames int, meanVelocity, maxVelocity float64) float64 {
	durationScore := float64(durationFrames) / fullDurationFrames
	if durationScore > 1 {
		durationScore = 1
	}

	velocityScore := 0.5
	if maxVelocity > 0 {
		velocityScore = 1 - meanVelocity/maxVelocity
	}

	confidence := 0.4*durationScore + 0.6*velocityScore
	if confidence < confidenceFloor {
		return confidenceFloor
	}
	if confidence > confidenceCeiling {
		return confidenceCeiling
	}
	return confidence
}

func sliceMean(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return stat.Mean(s, nil)
}

func sliceMax(s []float64) float64 {
	var max float64
	for _, v := range s {
		if v > max {
			max = v
		}
	}
	return max
}
