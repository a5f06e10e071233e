package detect

import (
	"math"
	"testing"

	"github.com/henriquefukushima/serve-ai-analysis/internal/ball"
	"github.com/henriquefukushima/serve-ai-analysis/internal/pose"
)

func TestConstantScorer(t *testing.T) {
	s := ConstantScorer{Value: 1.0}

	if got := s.FrameScore(pose.NeutralFrame(0, 30.0), nil); got != 1.0 {
		t.Errorf("expected frame score 1.0, got %f", got)
	}
	if got := s.EventScore([]float64{0.1, 0.2}); got != 1.0 {
		t.Errorf("expected event score 1.0 regardless of frames, got %f", got)
	}
}

func TestVisibilityScorer_PoseOnly(t *testing.T) {
	s := VisibilityScorer{}
	frame := pose.NeutralFrame(0, 30.0)

	// All fixture landmarks share a 0.9 visibility
	got := s.FrameScore(frame, nil)
	if math.Abs(got-0.9) > 1e-9 {
		t.Errorf("expected mean visibility 0.9, got %f", got)
	}
}

func TestVisibilityScorer_BlendsBall(t *testing.T) {
	s := VisibilityScorer{}
	frame := pose.NeutralFrame(0, 30.0)
	det := &ball.Detection{FrameIdx: 0, Confidence: 0.5}

	// (0.9 + 0.5) / 2
	got := s.FrameScore(frame, det)
	if math.Abs(got-0.7) > 1e-9 {
		t.Errorf("expected blended score 0.7, got %f", got)
	}
}

func TestVisibilityScorer_NoSignal(t *testing.T) {
	s := VisibilityScorer{}
	empty := pose.Frame{Index: 0, Landmarks: map[pose.Name]pose.Landmark{}}

	if got := s.FrameScore(empty, nil); got != 0.5 {
		t.Errorf("expected neutral 0.5 with no signal, got %f", got)
	}
	if got := s.EventScore(nil); got != 0.5 {
		t.Errorf("expected neutral 0.5 for empty score list, got %f", got)
	}
}

func TestVisibilityScorer_EventScoreAverages(t *testing.T) {
	s := VisibilityScorer{}

	got := s.EventScore([]float64{0.4, 0.6, 0.8})
	if math.Abs(got-0.6) > 1e-9 {
		t.Errorf("expected average 0.6, got %f", got)
	}
}
