package detect

import (
	"testing"

	"github.com/henriquefukushima/serve-ai-analysis/internal/pose"
)

func serveFixture() (*pose.Stream, pose.ServeMotion) {
	motion := pose.ServeMotion{TossStart: 10, WindupStart: 20, Contact: 40}
	return pose.ServeStream("fixture", 90, 30.0, motion), motion
}

func TestContactMoment_FiresAtPeak(t *testing.T) {
	stream, motion := serveFixture()

	if !contactMoment(stream.Frames, motion.Contact, DefaultConfig()) {
		t.Error("expected contact moment at the wrist peak")
	}
}

func TestContactMoment_NoForwardMotionBeforePeak(t *testing.T) {
	stream, motion := serveFixture()

	// The wrist holds its x position until contact, so frames just before
	// the peak fail the forward-motion check even though they sit within
	// the peak tolerance.
	for _, idx := range []int{motion.Contact - 3, motion.Contact - 1} {
		if contactMoment(stream.Frames, idx, DefaultConfig()) {
			t.Errorf("expected no contact at frame %d before forward motion starts", idx)
		}
	}
}

func TestContactMoment_WristBelowShoulder(t *testing.T) {
	stream, _ := serveFixture()

	// Frame 5 is neutral: wrist well below the shoulder
	if contactMoment(stream.Frames, 5, DefaultConfig()) {
		t.Error("expected no contact with the wrist below the shoulder")
	}
}

func TestContactMoment_FarFromPeak(t *testing.T) {
	stream, motion := serveFixture()

	// Frame 50 still has the wrist above the shoulder with forward motion,
	// but it is 10 frames past the peak, outside the tolerance.
	idx := motion.Contact + 10
	if contactMoment(stream.Frames, idx, DefaultConfig()) {
		t.Errorf("expected no contact %d frames past the peak", idx-motion.Contact)
	}
}

func TestContactMoment_RejectsSingleFrameJitter(t *testing.T) {
	// A lone high frame in an otherwise neutral stream: the sustained
	// high-position check must reject it.
	stream := &pose.Stream{Source: "jitter", FPS: 30.0}
	for i := 0; i < 90; i++ {
		stream.Frames = append(stream.Frames, pose.NeutralFrame(i, 30.0))
	}

	spike := stream.Frames[40].Landmarks[pose.RightWrist]
	spike.Y = 0.05
	stream.Frames[40].Landmarks[pose.RightWrist] = spike

	next := stream.Frames[41].Landmarks[pose.RightWrist]
	next.X += 0.05 // forward motion present, still must not fire
	stream.Frames[41].Landmarks[pose.RightWrist] = next

	if contactMoment(stream.Frames, 40, DefaultConfig()) {
		t.Error("expected single-frame spike to be rejected")
	}
}

func TestContactMoment_StreamEdges(t *testing.T) {
	stream, _ := serveFixture()
	cfg := DefaultConfig()

	// First and last frames can never satisfy the 3-frame motion span
	if contactMoment(stream.Frames, 0, cfg) {
		t.Error("expected no contact at the first frame")
	}
	if contactMoment(stream.Frames, len(stream.Frames)-1, cfg) {
		t.Error("expected no contact at the last frame")
	}
}
