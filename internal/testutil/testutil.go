// Package testutil provides shared test utilities and fixtures.
//
// This package centralises synthetic frame-sequence builders so tests
// and tools construct motion data the same way instead of duplicating
// landmark plumbing.
package testutil

import (
	"math"
	"testing"

	"github.com/apexform/motionlab/internal/pose"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// VisibleLandmark builds a fully tracked landmark at the given position.
func VisibleLandmark(x, y, z float64) pose.Landmark {
	return pose.Landmark{X: x, Y: y, Z: z, Visibility: 1, Presence: 1}
}

// StationaryFrames builds n identical frames with every landmark fully
// visible at a fixed, per-slot-distinct position. Zero displacement
// between every consecutive pair.
func StationaryFrames(n int) []pose.Frame {
	var frame pose.Frame
	for i := range frame {
		frame[i] = VisibleLandmark(0.1+0.02*float64(i), 0.5, 0)
	}
	frames := make([]pose.Frame, n)
	for i := range frames {
		frames[i] = frame
	}
	return frames
}

// OscillatingFrames builds n frames of a squat-like motion: every
// landmark's Y position follows a sine wave with the given amplitude
// and period (in frames). All landmarks are fully visible.
func OscillatingFrames(n int, amplitude float64, periodFrames int) []pose.Frame {
	frames := make([]pose.Frame, n)
	for i := range frames {
		y := 0.5 + amplitude*math.Sin(2*math.Pi*float64(i)/float64(periodFrames))
		for j := range frames[i] {
			frames[i][j] = VisibleLandmark(0.1+0.02*float64(j), y, 0)
		}
	}
	return frames
}

// MovingJointFrames builds n frames where only the given landmark slots
// are visible, each advancing by step in X per frame. Every other slot
// is left at zero visibility.
func MovingJointFrames(n int, slots []int, step float64) []pose.Frame {
	frames := make([]pose.Frame, n)
	for i := range frames {
		for _, slot := range slots {
			frames[i][slot] = VisibleLandmark(0.1+step*float64(i), 0.5, 0)
		}
	}
	return frames
}
