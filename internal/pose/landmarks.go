// Package pose provides the body-landmark data model consumed by serve detection.
package pose

import (
	"errors"
	"fmt"
)

// Name identifies a tracked body point. The vocabulary is closed: serve
// detection only ever looks up the names defined below, regardless of what
// the upstream pose estimator tracks internally.
type Name string

// Body landmark names used for serve analysis.
const (
	Nose          Name = "nose"
	LeftShoulder  Name = "left_shoulder"
	RightShoulder Name = "right_shoulder"
	LeftElbow     Name = "left_elbow"
	RightElbow    Name = "right_elbow"
	LeftWrist     Name = "left_wrist"
	RightWrist    Name = "right_wrist"
	LeftHip       Name = "left_hip"
	RightHip      Name = "right_hip"
	LeftKnee      Name = "left_knee"
	RightKnee     Name = "right_knee"
	LeftAnkle     Name = "left_ankle"
	RightAnkle    Name = "right_ankle"
)

// Landmark represents a single tracked body point with a 3D position and a
// visibility score in [0,1]. Coordinates follow the image convention: x grows
// rightward, y grows downward, so a smaller y means higher in the frame.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Frame represents the pose data for a single video frame. A frame may omit
// landmarks the upstream estimator could not resolve.
type Frame struct {
	Index     int               `json:"frame_idx"`
	Timestamp float64           `json:"timestamp"`
	Landmarks map[Name]Landmark `json:"landmarks"`
}

// Landmark returns the named landmark and whether it is present on this frame.
func (f Frame) Landmark(name Name) (Landmark, bool) {
	lm, ok := f.Landmarks[name]
	return lm, ok
}

// Stream is an ordered, finite sequence of pose frames from one source video.
type Stream struct {
	// Source is a free-form label identifying the originating video. It is
	// carried through to detected events but never interpreted.
	Source string `json:"source"`

	// FPS is the frame rate of the source video, used to convert
	// second-based thresholds into frame counts.
	FPS float64 `json:"fps"`

	Frames []Frame `json:"frames"`
}

// Len returns the number of frames in the stream.
func (s *Stream) Len() int {
	return len(s.Frames)
}

// Above reports whether upper is above lower in the frame, i.e. its vertical
// coordinate is smaller by at least threshold. A zero threshold makes this a
// plain comparison.
func Above(upper, lower Landmark, threshold float64) bool {
	return upper.Y < lower.Y-threshold
}

// ErrNonMonotonic is returned when a stream violates the frame-ordering
// precondition.
var ErrNonMonotonic = errors.New("non-monotonic pose stream")

// CheckStream verifies the stream ordering precondition: frame indices must
// strictly increase and timestamps must be non-decreasing. Detection refuses
// to run on a stream that fails this check rather than produce subtly wrong
// events.
func CheckStream(frames []Frame) error {
	for i := 1; i < len(frames); i++ {
		if frames[i].Index <= frames[i-1].Index {
			return fmt.Errorf("%w: frame index %d at position %d not greater than previous %d",
				ErrNonMonotonic, frames[i].Index, i, frames[i-1].Index)
		}
		if frames[i].Timestamp < frames[i-1].Timestamp {
			return fmt.Errorf("%w: timestamp %.3f at position %d before previous %.3f",
				ErrNonMonotonic, frames[i].Timestamp, i, frames[i-1].Timestamp)
		}
	}
	return nil
}
