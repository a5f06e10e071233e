package detect

import "github.com/henriquefukushima/serve-ai-analysis/internal/pose"

// contactMoment reports whether frames[idx] is the moment of ball contact.
// It is only evaluated once the windup phase is active, which bounds the
// search space and keeps unrelated overhead motion from triggering it.
//
// Four checks, all required:
//  1. the hitting wrist is above the shoulder on this frame;
//  2. at least 60% of the surrounding half-window holds that relationship,
//     rejecting single-frame jitter;
//  3. this frame sits within PeakTolerance of the wrist's highest point in
//     the peak window;
//  4. the wrist is moving forward across the frame (x increasing between the
//     immediate neighbors).
func contactMoment(frames []pose.Frame, idx int, cfg Config) bool {
	wrist, ok := frames[idx].Landmark(pose.RightWrist)
	if !ok {
		return false
	}
	shoulder, ok := frames[idx].Landmark(pose.RightShoulder)
	if !ok {
		return false
	}
	if wrist.Y >= shoulder.Y {
		return false
	}

	// Sustained high position, not a momentary peak.
	start := max(0, idx-cfg.HalfWindow)
	end := min(len(frames), idx+cfg.HalfWindow)

	highFrames := 0
	for i := start; i < end; i++ {
		if w, ok := frames[i].Landmark(pose.RightWrist); ok && w.Y < shoulder.Y {
			highFrames++
		}
	}
	if float64(highFrames) < float64(end-start)*0.6 {
		return false
	}

	// Locate the wrist's highest point in the wider peak window.
	start = max(0, idx-cfg.PeakWindow)
	end = min(len(frames), idx+cfg.PeakWindow)

	highestY := wrist.Y
	highestFrame := idx
	for i := start; i < end; i++ {
		if w, ok := frames[i].Landmark(pose.RightWrist); ok && w.Y < highestY {
			highestY = w.Y
			highestFrame = i
		}
	}
	if abs(idx-highestFrame) > cfg.PeakTolerance {
		return false
	}

	// Forward swing: x increasing across the 3-frame span around idx.
	if idx == 0 || idx == len(frames)-1 {
		return false
	}
	prev, ok := frames[idx-1].Landmark(pose.RightWrist)
	if !ok {
		return false
	}
	next, ok := frames[idx+1].Landmark(pose.RightWrist)
	if !ok {
		return false
	}
	return next.X > prev.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
