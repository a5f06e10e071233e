package detect

// Event represents a detected serve: a contiguous, inclusive frame range
// centered on the contact moment. Events are immutable once accepted into a
// resolved list.
type Event struct {
	StartFrame   int     `json:"start_frame"`
	EndFrame     int     `json:"end_frame"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Duration     float64 `json:"duration"`
	ContactFrame int     `json:"contact_frame"`
	Confidence   float64 `json:"confidence"`

	// Source labels the originating stream. It is carried through
	// unmodified, never interpreted.
	Source string `json:"source"`
}

// Overlaps reports whether two events' frame ranges intersect.
func (e Event) Overlaps(other Event) bool {
	return e.StartFrame <= other.EndFrame && other.StartFrame <= e.EndFrame
}
