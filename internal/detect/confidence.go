package detect

import (
	"github.com/henriquefukushima/serve-ai-analysis/internal/ball"
	"github.com/henriquefukushima/serve-ai-analysis/internal/pose"
)

// Scorer computes confidence scores. FrameScore is called once per gated
// frame while a candidate is in progress; EventScore turns the accumulated
// per-frame scores into the confidence of the emitted event.
type Scorer interface {
	FrameScore(f pose.Frame, b *ball.Detection) float64
	EventScore(scores []float64) float64
}

// ConstantScorer assigns every frame and event the same fixed confidence.
type ConstantScorer struct {
	Value float64
}

// FrameScore returns the fixed value.
func (s ConstantScorer) FrameScore(pose.Frame, *ball.Detection) float64 {
	return s.Value
}

// EventScore returns the fixed value.
func (s ConstantScorer) EventScore([]float64) float64 {
	return s.Value
}

// VisibilityScorer derives confidence from the data itself: the mean
// visibility of the required landmarks, blended evenly with the ball
// detection confidence when one exists for the frame. Event confidence is
// the running average across the candidate's frames.
type VisibilityScorer struct{}

// FrameScore returns the blended per-frame confidence, or 0.5 when the frame
// carries no usable signal at all.
func (VisibilityScorer) FrameScore(f pose.Frame, b *ball.Detection) float64 {
	var parts []float64

	var sum float64
	var n int
	for _, name := range RequiredLandmarks {
		if lm, ok := f.Landmark(name); ok {
			sum += lm.Visibility
			n++
		}
	}
	if n > 0 {
		parts = append(parts, sum/float64(n))
	}
	if b != nil {
		parts = append(parts, b.Confidence)
	}

	if len(parts) == 0 {
		return 0.5
	}
	return mean(parts)
}

// EventScore averages the accumulated frame scores.
func (VisibilityScorer) EventScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.5
	}
	return mean(scores)
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
