package pose

import "testing"

func TestTripletKnownJoints(t *testing.T) {
	tests := []struct {
		joint JointID
		want  JointTriplet
	}{
		{JointLeftKnee, JointTriplet{LeftHip, LeftKnee, LeftAnkle}},
		{JointRightElbow, JointTriplet{RightShoulder, RightElbow, RightWrist}},
		{JointLeftAnkle, JointTriplet{LeftKnee, LeftAnkle, LeftFootIndex}},
	}
	for _, tt := range tests {
		got, ok := Triplet(tt.joint)
		if !ok {
			t.Errorf("Triplet(%s) not found", tt.joint)
			continue
		}
		if got != tt.want {
			t.Errorf("Triplet(%s) = %+v, want %+v", tt.joint, got, tt.want)
		}
	}
}

func TestTripletUnknownJoint(t *testing.T) {
	if _, ok := Triplet(JointID("left_nostril")); ok {
		t.Error("expected unknown joint to return ok=false")
	}
}

func TestAllJointsHaveTriplets(t *testing.T) {
	for _, joint := range AllJoints {
		tr, ok := Triplet(joint)
		if !ok {
			t.Errorf("joint %s missing from table", joint)
			continue
		}
		for _, idx := range []int{tr.A, tr.Vertex, tr.C} {
			if idx < 0 || idx >= LandmarkCount {
				t.Errorf("joint %s triplet index %d out of range", joint, idx)
			}
		}
	}
}

func TestLandmarkNameRoundTrip(t *testing.T) {
	for i := 0; i < LandmarkCount; i++ {
		name := LandmarkName(i)
		if name == "" {
			t.Fatalf("LandmarkName(%d) is empty", i)
		}
		idx, ok := LandmarkIndex(name)
		if !ok || idx != i {
			t.Errorf("LandmarkIndex(%q) = (%d, %v), want (%d, true)", name, idx, ok, i)
		}
	}
	if LandmarkName(-1) != "" || LandmarkName(LandmarkCount) != "" {
		t.Error("out-of-range LandmarkName should be empty")
	}
	if _, ok := LandmarkIndex("third_elbow"); ok {
		t.Error("unknown name should not resolve")
	}
}
