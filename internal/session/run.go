// Package session orchestrates a full analysis run over one recorded
// frame sequence: phase detection plus per-joint angle series, with
// run-level identity and timing for reporting. Runs are in-memory
// only; downstream consumers decide what, if anything, to keep.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/apexform/motionlab/internal/angles"
	"github.com/apexform/motionlab/internal/monitoring"
	"github.com/apexform/motionlab/internal/phases"
	"github.com/apexform/motionlab/internal/pose"
	"github.com/apexform/motionlab/internal/timeutil"
)

// Runner holds the fixed parameters for analysis runs. Safe to reuse
// across sequences; each Run call is independent.
type Runner struct {
	DetectionConfig phases.Config
	AngleJoints     []pose.JointID
	Use2DAngles     bool

	// Clock defaults to wall time; tests substitute a mock.
	Clock timeutil.Clock
}

// RunResult bundles everything one analysis run produced.
type RunResult struct {
	RunID       string
	FrameCount  int
	Duration    time.Duration
	Detection   phases.Result
	AngleSeries map[pose.JointID][]float64
}

// NewRunner creates a runner with the given detection parameters.
// A nil angleJoints computes no angle series.
func NewRunner(cfg phases.Config, angleJoints []pose.JointID, use2D bool) *Runner {
	return &Runner{
		DetectionConfig: cfg,
		AngleJoints:     angleJoints,
		Use2DAngles:     use2D,
		Clock:           timeutil.RealClock{},
	}
}

// Run executes phase detection and angle extraction over one sequence.
func (r *Runner) Run(frames []pose.Frame) RunResult {
	clock := r.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}

	runID := uuid.New().String()
	start := clock.Now()
	monitoring.Logf("[PhaseRun] Started run %s: %d frames, %d angle joints", runID, len(frames), len(r.AngleJoints))

	detection := phases.DetectPhases(frames, r.DetectionConfig)

	var series map[pose.JointID][]float64
	if len(r.AngleJoints) > 0 {
		series = make(map[pose.JointID][]float64, len(r.AngleJoints))
		for _, joint := range r.AngleJoints {
			series[joint] = angles.AngleSequence(frames, joint, r.Use2DAngles)
		}
	}

	elapsed := clock.Since(start)
	monitoring.Logf("[PhaseRun] Completed run %s: %d phases, %d minima in %.3fs",
		runID, len(detection.Phases), len(detection.MinimaFrames), elapsed.Seconds())

	return RunResult{
		RunID:       runID,
		FrameCount:  len(frames),
		Duration:    elapsed,
		Detection:   detection,
		AngleSeries: series,
	}
}
