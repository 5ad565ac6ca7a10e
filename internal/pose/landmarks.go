// Package pose defines the landmark data model shared by the angle and
// phase-detection engines: per-frame landmark sets, the fixed 33-slot
// landmark layout, and the joint table mapping anatomical joints to
// landmark triplets.
package pose

// LandmarkCount is the number of landmark slots in a pose frame.
// The slot ordering follows the MediaPipe pose topology.
const LandmarkCount = 33

// Landmark slot indices. Indices are semantic: slot 25 is always the
// left knee regardless of which joints were actually tracked.
const (
	Nose = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
)

// Landmark is a single tracked body point at one sampled instant.
// X and Y are normalized image coordinates (typically 0-1), Z is a
// normalized depth estimate. Visibility and Presence are tracker
// confidence scores in [0, 1]. Landmarks are immutable values: the
// engines never mutate a frame they were handed.
type Landmark struct {
	X          float64
	Y          float64
	Z          float64
	Visibility float64
	Presence   float64
}

// Frame is one full set of landmarks sampled at a single instant.
// Untracked slots hold zero-valued landmarks (visibility 0), which every
// consumer already treats as unusable.
type Frame [LandmarkCount]Landmark

// landmarkNames maps slot indices to their canonical snake_case names,
// used by the tuning-config joint weight table.
var landmarkNames = [LandmarkCount]string{
	"nose",
	"left_eye_inner",
	"left_eye",
	"left_eye_outer",
	"right_eye_inner",
	"right_eye",
	"right_eye_outer",
	"left_ear",
	"right_ear",
	"mouth_left",
	"mouth_right",
	"left_shoulder",
	"right_shoulder",
	"left_elbow",
	"right_elbow",
	"left_wrist",
	"right_wrist",
	"left_pinky",
	"right_pinky",
	"left_index",
	"right_index",
	"left_thumb",
	"right_thumb",
	"left_hip",
	"right_hip",
	"left_knee",
	"right_knee",
	"left_ankle",
	"right_ankle",
	"left_heel",
	"right_heel",
	"left_foot_index",
	"right_foot_index",
}

// LandmarkName returns the canonical name for a landmark slot, or ""
// if the index is out of range.
func LandmarkName(index int) string {
	if index < 0 || index >= LandmarkCount {
		return ""
	}
	return landmarkNames[index]
}

// LandmarkIndex resolves a canonical landmark name to its slot index.
func LandmarkIndex(name string) (int, bool) {
	for i, n := range landmarkNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
