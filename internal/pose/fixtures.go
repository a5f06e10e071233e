package pose

// Synthetic stream builders used by tests across packages. They model a
// right-handed player seen in image coordinates: y grows downward, the serve
// swing travels in +x.

// Neutral posture coordinates for a standing player.
const (
	fixtureNoseY     = 0.20
	fixtureShoulderY = 0.30
	fixtureElbowY    = 0.40
	fixtureWristY    = 0.50
	fixtureHipY      = 0.55
	fixtureKneeY     = 0.75
	fixtureAnkleY    = 0.95

	fixtureVisibility = 0.9
)

// NeutralFrame returns a frame with every landmark in a neutral standing
// posture: wrists below shoulders, elbows below shoulders, nobody serving.
func NeutralFrame(idx int, fps float64) Frame {
	at := func(x, y float64) Landmark {
		return Landmark{X: x, Y: y, Visibility: fixtureVisibility}
	}
	return Frame{
		Index:     idx,
		Timestamp: float64(idx) / fps,
		Landmarks: map[Name]Landmark{
			Nose:          at(0.50, fixtureNoseY),
			LeftShoulder:  at(0.45, fixtureShoulderY),
			RightShoulder: at(0.55, fixtureShoulderY),
			LeftElbow:     at(0.42, fixtureElbowY),
			RightElbow:    at(0.58, fixtureElbowY),
			LeftWrist:     at(0.40, fixtureWristY),
			RightWrist:    at(0.60, fixtureWristY),
			LeftHip:       at(0.46, fixtureHipY),
			RightHip:      at(0.54, fixtureHipY),
			LeftKnee:      at(0.46, fixtureKneeY),
			RightKnee:     at(0.54, fixtureKneeY),
			LeftAnkle:     at(0.46, fixtureAnkleY),
			RightAnkle:    at(0.54, fixtureAnkleY),
		},
	}
}

// ServeMotion describes where the phases of a synthetic serve begin within a
// fixture stream. TossStart < WindupStart < Contact must hold.
type ServeMotion struct {
	// TossStart is the first frame with the left wrist raised above the nose.
	TossStart int
	// WindupStart is the first frame with the right elbow above the shoulder.
	WindupStart int
	// Contact is the frame where the right wrist reaches its highest point
	// and forward motion begins.
	Contact int
}

// ServeStream builds a stream of n frames at the given fps containing a
// single serve-shaped motion. The right wrist rises linearly from the windup
// to its peak at the contact frame, then falls back; its x coordinate is
// constant through the rise and increases after contact, so the windowed
// contact heuristic fires exactly at m.Contact.
func ServeStream(source string, n int, fps float64, m ServeMotion) *Stream {
	s := &Stream{Source: source, FPS: fps, Frames: make([]Frame, 0, n)}
	for i := 0; i < n; i++ {
		s.Frames = append(s.Frames, serveFrame(i, fps, m))
	}
	return s
}

// AppendServe appends a second serve-shaped motion to an existing fixture
// stream, reusing the stream's fps. Frames continue from the current length.
func AppendServe(s *Stream, n int, m ServeMotion) {
	start := len(s.Frames)
	for i := start; i < start+n; i++ {
		s.Frames = append(s.Frames, serveFrame(i, s.FPS, m))
	}
}

func serveFrame(i int, fps float64, m ServeMotion) Frame {
	f := NeutralFrame(i, fps)

	if i >= m.TossStart {
		lw := f.Landmarks[LeftWrist]
		lw.Y = fixtureNoseY - 0.12
		f.Landmarks[LeftWrist] = lw
	}
	if i >= m.WindupStart {
		re := f.Landmarks[RightElbow]
		re.Y = fixtureShoulderY - 0.05
		f.Landmarks[RightElbow] = re

		rw := f.Landmarks[RightWrist]
		rw.Y, rw.X = rightWristAt(i, m)
		f.Landmarks[RightWrist] = rw
	}
	return f
}

// rightWristAt traces the hitting-arm wrist: a linear rise from the neutral
// position to the peak at the contact frame, then a slower drop back down.
func rightWristAt(i int, m ServeMotion) (y, x float64) {
	const peakY = 0.05
	y = fixtureWristY
	x = 0.60

	switch {
	case i <= m.Contact:
		rise := float64(i-m.WindupStart) / float64(m.Contact-m.WindupStart)
		y = fixtureWristY - (fixtureWristY-peakY)*rise
	default:
		y = peakY + 0.02*float64(i-m.Contact)
		if y > fixtureWristY {
			y = fixtureWristY
		}
		x = 0.60 + 0.01*float64(i-m.Contact)
	}
	return y, x
}
