// Package angles computes joint angles from landmark triplets. All
// entry points use (value, ok) returns: an unreliable or degenerate
// measurement yields ok=false, never an error. Occlusion is a normal
// operating condition, not a fault.
package angles

import (
	"math"

	"github.com/apexform/motionlab/internal/pose"
)

// MinVisibility is the tracking confidence below which a landmark is
// considered unreliable and excluded from angle computation.
const MinVisibility = 0.5

// minVectorMagnitude guards against near-coincident points: below this
// the angle at the vertex is undefined.
const minVectorMagnitude = 1e-4

// straightAngleDeg is the synthetic "extended limb" value used to seed
// angle sequences before the first computable frame.
const straightAngleDeg = 180.0

// CalculateAngle computes the angle in degrees at b between rays b→a
// and b→c using full 3D coordinates. Returns false when any landmark's
// visibility is below MinVisibility or the geometry is degenerate.
// Valid results lie in [0, 180].
func CalculateAngle(a, b, c pose.Landmark) (float64, bool) {
	if a.Visibility < MinVisibility || b.Visibility < MinVisibility || c.Visibility < MinVisibility {
		return 0, false
	}

	bax := a.X - b.X
	bay := a.Y - b.Y
	baz := a.Z - b.Z
	bcx := c.X - b.X
	bcy := c.Y - b.Y
	bcz := c.Z - b.Z

	magBA := math.Sqrt(bax*bax + bay*bay + baz*baz)
	magBC := math.Sqrt(bcx*bcx + bcy*bcy + bcz*bcz)
	if magBA < minVectorMagnitude || magBC < minVectorMagnitude {
		return 0, false
	}

	cos := (bax*bcx + bay*bcy + baz*bcz) / (magBA * magBC)
	return math.Acos(clamp(cos, -1, 1)) * 180 / math.Pi, true
}

// CalculateAngle2D is CalculateAngle restricted to the x,y components.
// Used when the depth estimate is unreliable (e.g. side-on camera).
func CalculateAngle2D(a, b, c pose.Landmark) (float64, bool) {
	if a.Visibility < MinVisibility || b.Visibility < MinVisibility || c.Visibility < MinVisibility {
		return 0, false
	}

	bax := a.X - b.X
	bay := a.Y - b.Y
	bcx := c.X - b.X
	bcy := c.Y - b.Y

	magBA := math.Sqrt(bax*bax + bay*bay)
	magBC := math.Sqrt(bcx*bcx + bcy*bcy)
	if magBA < minVectorMagnitude || magBC < minVectorMagnitude {
		return 0, false
	}

	cos := (bax*bcx + bay*bcy) / (magBA * magBC)
	return math.Acos(clamp(cos, -1, 1)) * 180 / math.Pi, true
}

// JointAngle looks up the landmark triplet for a joint and computes its
// angle for one frame. Unknown joints return false.
func JointAngle(frame pose.Frame, joint pose.JointID, use2D bool) (float64, bool) {
	t, ok := pose.Triplet(joint)
	if !ok {
		return 0, false
	}
	a, b, c := frame[t.A], frame[t.Vertex], frame[t.C]
	if use2D {
		return CalculateAngle2D(a, b, c)
	}
	return CalculateAngle(a, b, c)
}

// AllJointAngles computes angles for the given joints in one frame.
// Joints with unreliable tracking are omitted from the result rather
// than reported as zero.
func AllJointAngles(frame pose.Frame, joints []pose.JointID, use2D bool) map[pose.JointID]float64 {
	out := make(map[pose.JointID]float64, len(joints))
	for _, joint := range joints {
		if angle, ok := JointAngle(frame, joint, use2D); ok {
			out[joint] = angle
		}
	}
	return out
}

// AverageJointAngle returns the mean of the left and right joint angles
// for bilateral movements. If only one side is computable that side's
// angle is returned unchanged; if neither is, ok is false.
func AverageJointAngle(frame pose.Frame, left, right pose.JointID, use2D bool) (float64, bool) {
	l, okL := JointAngle(frame, left, use2D)
	r, okR := JointAngle(frame, right, use2D)
	switch {
	case okL && okR:
		return (l + r) / 2, true
	case okL:
		return l, true
	case okR:
		return r, true
	default:
		return 0, false
	}
}

// AngleSequence produces a dense per-frame angle series the same length
// as the input. Gap policy: frames with no computable angle carry the
// last emitted value forward; before any computable frame the series
// holds 180 (assumed extended starting pose). Never null, never
// interpolated.
func AngleSequence(frames []pose.Frame, joint pose.JointID, use2D bool) []float64 {
	out := make([]float64, len(frames))
	last := straightAngleDeg
	for i, frame := range frames {
		if angle, ok := JointAngle(frame, joint, use2D); ok {
			last = angle
		}
		out[i] = last
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
