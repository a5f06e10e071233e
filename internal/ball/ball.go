// Package ball provides the optional ball-detection signal consumed by serve
// detection. Ball positions are produced by an external collaborator; here
// they only blend into per-frame confidence scores and never gate phase
// transitions.
package ball

import "sort"

// Detection represents a detected ball in a single frame.
type Detection struct {
	FrameIdx   int     `json:"frame_idx"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	Confidence float64 `json:"confidence"`
}

// Sequence is an ordered set of ball detections keyed by frame index.
type Sequence struct {
	detections []Detection
}

// NewSequence builds a Sequence from detections in any order.
func NewSequence(detections []Detection) *Sequence {
	sorted := make([]Detection, len(detections))
	copy(sorted, detections)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FrameIdx < sorted[j].FrameIdx
	})
	return &Sequence{detections: sorted}
}

// Len returns the number of detections in the sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.detections)
}

// At returns the detection for the given frame index, if any. A nil Sequence
// is valid and never matches; ball data is optional everywhere.
func (s *Sequence) At(frameIdx int) (Detection, bool) {
	if s == nil {
		return Detection{}, false
	}
	i := sort.Search(len(s.detections), func(i int) bool {
		return s.detections[i].FrameIdx >= frameIdx
	})
	if i < len(s.detections) && s.detections[i].FrameIdx == frameIdx {
		return s.detections[i], true
	}
	return Detection{}, false
}
