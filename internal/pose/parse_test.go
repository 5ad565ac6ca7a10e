package pose

import "testing"

func TestParseFrameFullRows(t *testing.T) {
	payload := []byte(`[
		[0.1, 0.2, 0.3, 0.9, 0.8],
		[0.4, 0.5, 0.6, 0.7, 0.6]
	]`)

	frame := ParseFrame(payload)

	if frame[0].X != 0.1 || frame[0].Y != 0.2 || frame[0].Z != 0.3 {
		t.Errorf("landmark 0 position = %+v, want (0.1, 0.2, 0.3)", frame[0])
	}
	if frame[0].Visibility != 0.9 || frame[0].Presence != 0.8 {
		t.Errorf("landmark 0 confidence = (%f, %f), want (0.9, 0.8)", frame[0].Visibility, frame[0].Presence)
	}
	if frame[1].X != 0.4 {
		t.Errorf("landmark 1 X = %f, want 0.4", frame[1].X)
	}
	// Rows beyond the payload stay zero.
	if frame[2] != (Landmark{}) {
		t.Errorf("landmark 2 = %+v, want zero", frame[2])
	}
}

func TestParseFrameShortRows(t *testing.T) {
	// Missing fields substitute zero, not an error.
	frame := ParseFrame([]byte(`[[0.1, 0.2], [], [0.3]]`))

	if frame[0].X != 0.1 || frame[0].Y != 0.2 {
		t.Errorf("landmark 0 = %+v, want x=0.1 y=0.2", frame[0])
	}
	if frame[0].Z != 0 || frame[0].Visibility != 0 || frame[0].Presence != 0 {
		t.Errorf("landmark 0 missing fields not zeroed: %+v", frame[0])
	}
	if frame[1] != (Landmark{}) {
		t.Errorf("empty row landmark = %+v, want zero", frame[1])
	}
	if frame[2].X != 0.3 {
		t.Errorf("landmark 2 X = %f, want 0.3", frame[2].X)
	}
}

func TestParseFrameCorruptPayload(t *testing.T) {
	// A corrupt frame decodes to zero usable landmarks, never an error.
	for _, payload := range []string{`not json`, `{"a": 1}`, `[[0.1, "x"]]`, `42`} {
		frame := ParseFrame([]byte(payload))
		if frame != (Frame{}) {
			t.Errorf("ParseFrame(%q) = non-zero frame", payload)
		}
	}
}

func TestParseSequenceIsolatesCorruptFrames(t *testing.T) {
	payload := []byte(`[
		[[0.1, 0.2, 0.3, 0.9, 0.8]],
		"garbage",
		[[0.4, 0.5, 0.6, 0.9, 0.8]]
	]`)

	frames, err := ParseSequence(payload)
	if err != nil {
		t.Fatalf("ParseSequence returned error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	if frames[0][0].X != 0.1 {
		t.Errorf("frame 0 landmark 0 X = %f, want 0.1", frames[0][0].X)
	}
	if frames[1] != (Frame{}) {
		t.Error("corrupt frame 1 should decode to a zero frame")
	}
	if frames[2][0].X != 0.4 {
		t.Errorf("frame 2 landmark 0 X = %f, want 0.4", frames[2][0].X)
	}
}

func TestParseSequenceRejectsNonArray(t *testing.T) {
	if _, err := ParseSequence([]byte(`{"frames": []}`)); err == nil {
		t.Fatal("expected error for non-array sequence payload")
	}
}

func TestParseSequenceEmpty(t *testing.T) {
	frames, err := ParseSequence([]byte(`[]`))
	if err != nil {
		t.Fatalf("ParseSequence returned error: %v", err)
	}
	if len(frames) != 0 {
		t.Fatalf("got %d frames, want 0", len(frames))
	}
}
