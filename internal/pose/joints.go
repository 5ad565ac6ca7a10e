package pose

// JointID identifies an anatomical joint whose angle can be computed
// from a fixed triplet of landmark slots.
type JointID string

const (
	JointLeftElbow     JointID = "left_elbow"
	JointRightElbow    JointID = "right_elbow"
	JointLeftShoulder  JointID = "left_shoulder"
	JointRightShoulder JointID = "right_shoulder"
	JointLeftHip       JointID = "left_hip"
	JointRightHip      JointID = "right_hip"
	JointLeftKnee      JointID = "left_knee"
	JointRightKnee     JointID = "right_knee"
	JointLeftAnkle     JointID = "left_ankle"
	JointRightAnkle    JointID = "right_ankle"
)

// JointTriplet names the three landmark slots defining a joint angle:
// the angle is measured at Vertex between rays Vertex→A and Vertex→C.
type JointTriplet struct {
	A      int
	Vertex int
	C      int
}

// jointTable is the static joint configuration. It is data, not input:
// the triplets never vary per frame or per session.
var jointTable = map[JointID]JointTriplet{
	JointLeftElbow:     {LeftShoulder, LeftElbow, LeftWrist},
	JointRightElbow:    {RightShoulder, RightElbow, RightWrist},
	JointLeftShoulder:  {LeftElbow, LeftShoulder, LeftHip},
	JointRightShoulder: {RightElbow, RightShoulder, RightHip},
	JointLeftHip:       {LeftShoulder, LeftHip, LeftKnee},
	JointRightHip:      {RightShoulder, RightHip, RightKnee},
	JointLeftKnee:      {LeftHip, LeftKnee, LeftAnkle},
	JointRightKnee:     {RightHip, RightKnee, RightAnkle},
	JointLeftAnkle:     {LeftKnee, LeftAnkle, LeftFootIndex},
	JointRightAnkle:    {RightKnee, RightAnkle, RightFootIndex},
}

// Triplet returns the landmark triplet for a joint, or false for an
// unknown joint ID.
func Triplet(joint JointID) (JointTriplet, bool) {
	t, ok := jointTable[joint]
	return t, ok
}

// Named joint groups for batch angle queries. Slices are package-level
// for convenience; callers must not mutate them.
var (
	UpperBodyJoints = []JointID{
		JointLeftElbow, JointRightElbow,
		JointLeftShoulder, JointRightShoulder,
	}

	LowerBodyJoints = []JointID{
		JointLeftHip, JointRightHip,
		JointLeftKnee, JointRightKnee,
		JointLeftAnkle, JointRightAnkle,
	}

	AllJoints = []JointID{
		JointLeftElbow, JointRightElbow,
		JointLeftShoulder, JointRightShoulder,
		JointLeftHip, JointRightHip,
		JointLeftKnee, JointRightKnee,
		JointLeftAnkle, JointRightAnkle,
	}

	// BilateralPairs lists left/right joint pairs for movements where a
	// single averaged angle per joint is wanted (e.g. squats).
	BilateralPairs = [][2]JointID{
		{JointLeftElbow, JointRightElbow},
		{JointLeftShoulder, JointRightShoulder},
		{JointLeftHip, JointRightHip},
		{JointLeftKnee, JointRightKnee},
		{JointLeftAnkle, JointRightAnkle},
	}
)
