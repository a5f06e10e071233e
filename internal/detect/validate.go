package detect

import "github.com/henriquefukushima/serve-ai-analysis/internal/pose"

// validSegment checks that a candidate's frame range contains sustained serve
// motion, not just a brief correct-looking peak. It requires at least 30% of
// frames in [startFrame, endFrame] to show the hitting wrist above the
// previous frame's shoulder — a looser, post-hoc check than the in-window
// contact heuristic.
func validSegment(frames []pose.Frame, startFrame, endFrame int) bool {
	totalFrames := endFrame - startFrame + 1

	motionFrames := 0
	for i := startFrame; i <= endFrame && i < len(frames); i++ {
		if i <= startFrame {
			continue
		}
		wrist, ok := frames[i].Landmark(pose.RightWrist)
		if !ok {
			continue
		}
		prevShoulder, ok := frames[i-1].Landmark(pose.RightShoulder)
		if !ok {
			continue
		}
		if wrist.Y < prevShoulder.Y {
			motionFrames++
		}
	}

	return float64(motionFrames) >= float64(totalFrames)*0.3
}
