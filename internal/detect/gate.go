package detect

import "github.com/henriquefukushima/serve-ai-analysis/internal/pose"

// RequiredLandmarks are the body points serve detection cannot run without:
// the tossing wrist, the hitting arm, and the nose as the vertical reference.
var RequiredLandmarks = []pose.Name{
	pose.LeftWrist,
	pose.RightElbow,
	pose.RightShoulder,
	pose.RightWrist,
	pose.Nose,
}

// Gate is the per-frame completeness filter. Frames that fail the gate are
// skipped by the state machine as if they did not exist; they neither advance
// nor reset the current phase.
type Gate struct {
	MinVisibility float64
	Required      []pose.Name
}

// NewGate creates a gate over the standard required landmarks.
func NewGate(minVisibility float64) Gate {
	return Gate{MinVisibility: minVisibility, Required: RequiredLandmarks}
}

// Pass reports whether the frame has every required landmark at or above the
// visibility threshold. Pure predicate, no side effects.
func (g Gate) Pass(f pose.Frame) bool {
	for _, name := range g.Required {
		lm, ok := f.Landmark(name)
		if !ok || lm.Visibility < g.MinVisibility {
			return false
		}
	}
	return true
}
