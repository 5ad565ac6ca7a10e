package pose

import (
	"encoding/json"
	"fmt"
)

// Frames arrive from the tracking layer as nested numeric arrays: one
// row of up to five floats (x, y, z, visibility, presence) per landmark,
// 33 rows per frame. Real recordings contain occasional corrupt frames,
// so parsing is deliberately tolerant: short rows are zero-filled and an
// unparseable frame payload decodes to an all-zero frame (no usable
// landmarks) instead of failing the whole sequence.

// ParseFrame decodes a single frame payload. Corrupt payloads yield a
// zero-valued frame rather than an error; a zero landmark has zero
// visibility, which every consumer already skips.
func ParseFrame(data []byte) Frame {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return Frame{}
	}
	return frameFromRows(rows)
}

// ParseSequence decodes a full recording: an array of frame payloads.
// A top-level payload that is not an array is an error (the caller
// handed us the wrong thing entirely); individual corrupt frames are
// isolated and decode to zero-valued frames.
func ParseSequence(data []byte) ([]Frame, error) {
	var rawFrames []json.RawMessage
	if err := json.Unmarshal(data, &rawFrames); err != nil {
		return nil, fmt.Errorf("sequence payload is not an array of frames: %w", err)
	}

	frames := make([]Frame, len(rawFrames))
	for i, raw := range rawFrames {
		frames[i] = ParseFrame(raw)
	}
	return frames, nil
}

// frameFromRows builds a frame from decoded rows. Missing rows and
// missing row fields are left at zero; surplus rows and fields are
// ignored.
func frameFromRows(rows [][]float64) Frame {
	var f Frame
	for i := 0; i < LandmarkCount && i < len(rows); i++ {
		row := rows[i]
		lm := &f[i]
		if len(row) > 0 {
			lm.X = row[0]
		}
		if len(row) > 1 {
			lm.Y = row[1]
		}
		if len(row) > 2 {
			lm.Z = row[2]
		}
		if len(row) > 3 {
			lm.Visibility = row[3]
		}
		if len(row) > 4 {
			lm.Presence = row[4]
		}
	}
	return f
}
