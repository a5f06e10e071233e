package detect

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/henriquefukushima/serve-ai-analysis/internal/ball"
	"github.com/henriquefukushima/serve-ai-analysis/internal/pose"
)

// phase is the tagged state of the detection machine. Each concrete phase
// carries only the fields meaningful to it, so there is no "field present
// only in some phases" ambiguity.
type phase interface {
	phaseName() string
}

// searching is the initial state: no serve motion observed.
type searching struct{}

func (searching) phaseName() string { return "searching" }

// tossPrimed means the toss indicator has fired (left wrist above the nose)
// and the machine is waiting for the windup.
type tossPrimed struct {
	enteredAt int // stream position where the toss indicator first fired
	scores    []float64
}

func (*tossPrimed) phaseName() string { return "toss_primed" }

// windup means the hitting elbow has risen above the shoulder; from here
// every gated frame is tested as a contact candidate.
type windup struct {
	enteredAt int // stream position where the windup condition fired
	scores    []float64
}

func (*windup) phaseName() string { return "windup" }

// Detector runs the serve detection state machine over pose streams. It is a
// synchronous fold with no internal concurrency; one Detector may be shared
// across goroutines because Detect keeps all run state on the stack.
type Detector struct {
	cfg    Config
	gate   Gate
	scorer Scorer
	log    *zap.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithScorer sets the confidence scoring strategy. The default assigns a
// constant 1.0, matching detection runs without auxiliary signals.
func WithScorer(s Scorer) Option {
	return func(d *Detector) { d.scorer = s }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(d *Detector) { d.log = log }
}

// New creates a Detector, validating the configuration up front.
func New(cfg Config, opts ...Option) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detection config: %w", err)
	}
	d := &Detector{
		cfg:    cfg,
		gate:   NewGate(cfg.MinVisibility),
		scorer: ConstantScorer{Value: 1.0},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Detect folds the state machine over one stream and returns the resolved,
// non-overlapping serve event list. Ball detections are optional; pass nil
// when none exist. An empty result is a valid outcome, not an error.
func (d *Detector) Detect(stream *pose.Stream, balls *ball.Sequence) ([]Event, error) {
	if stream == nil || len(stream.Frames) == 0 {
		return []Event{}, nil
	}
	if stream.FPS <= 0 {
		return nil, fmt.Errorf("stream %q: fps must be positive, got %.2f", stream.Source, stream.FPS)
	}
	if err := pose.CheckStream(stream.Frames); err != nil {
		return nil, fmt.Errorf("stream %q: %w", stream.Source, err)
	}

	frames := stream.Frames
	bufferFrames := int(math.Round(d.cfg.BufferSeconds * stream.FPS))
	maxPhaseFrames := int(math.Round(d.cfg.MaxServeDuration * stream.FPS))

	// The gap constraint and the cooldown both block new detections after a
	// confirmed contact; the stricter of the two wins.
	cooldown := d.cfg.CooldownFrames
	if gapFrames := int(math.Round(d.cfg.MinGapSeconds * stream.FPS)); gapFrames > cooldown {
		cooldown = gapFrames
	}

	var (
		candidates    []Event
		state         phase = searching{}
		lastDetection       = -cooldown // allow a detection on the first frame
		lastServeEnd        = -1
	)

	for i := range frames {
		// Frames inside the last attempted serve's range are never
		// reconsidered, whether or not it was emitted.
		if i <= lastServeEnd {
			continue
		}

		// Stall reset, measured in raw frame-stream time: a phase that sits
		// for longer than the maximum serve duration without progressing was
		// a false signal.
		var enteredAt int
		switch p := state.(type) {
		case *tossPrimed:
			enteredAt = p.enteredAt
		case *windup:
			enteredAt = p.enteredAt
		default:
			enteredAt = i
		}
		if i-enteredAt > maxPhaseFrames {
			d.log.Debug("phase stalled, resetting",
				zap.String("source", stream.Source),
				zap.String("phase", state.phaseName()),
				zap.Int("frame", i))
			state = searching{}
		}

		f := frames[i]
		if !d.gate.Pass(f) {
			continue
		}
		if i-lastDetection < cooldown {
			continue
		}

		var ballDet *ball.Detection
		if det, ok := balls.At(f.Index); ok {
			ballDet = &det
		}
		score := d.scorer.FrameScore(f, ballDet)

		// Transitions cascade: one frame may prime the toss, fire the
		// windup, and be tested as the contact, in that order.
		if _, ok := state.(searching); ok {
			leftWrist := f.Landmarks[pose.LeftWrist]
			nose := f.Landmarks[pose.Nose]
			if pose.Above(leftWrist, nose, 0) {
				state = &tossPrimed{enteredAt: i, scores: []float64{score}}
				d.log.Debug("toss primed",
					zap.String("source", stream.Source), zap.Int("frame", i))
			}
		} else {
			switch p := state.(type) {
			case *tossPrimed:
				p.scores = append(p.scores, score)
			case *windup:
				p.scores = append(p.scores, score)
			}
		}

		if p, ok := state.(*tossPrimed); ok {
			elbow := f.Landmarks[pose.RightElbow]
			shoulder := f.Landmarks[pose.RightShoulder]
			if pose.Above(elbow, shoulder, 0) {
				state = &windup{enteredAt: i, scores: p.scores}
				d.log.Debug("windup detected",
					zap.String("source", stream.Source), zap.Int("frame", i))
			}
		}

		p, ok := state.(*windup)
		if !ok || !contactMoment(frames, i, d.cfg) {
			continue
		}

		// Contact confirmed. The cooldown and the do-not-reconsider range
		// start now, regardless of whether the candidate survives the
		// checks below.
		lastDetection = i
		startPos := max(lastServeEnd+1, i-bufferFrames)
		endPos := min(len(frames)-1, i+bufferFrames)
		lastServeEnd = endPos

		scores := p.scores
		state = searching{}

		duration := frames[endPos].Timestamp - frames[startPos].Timestamp
		if duration < d.cfg.MinServeDuration || duration > d.cfg.MaxServeDuration {
			d.log.Debug("candidate rejected: duration out of range",
				zap.String("source", stream.Source),
				zap.Int("contact_frame", f.Index),
				zap.Float64("duration", duration))
			continue
		}
		if !validSegment(frames, startPos, endPos) {
			d.log.Debug("candidate rejected: insufficient serve motion",
				zap.String("source", stream.Source),
				zap.Int("contact_frame", f.Index))
			continue
		}
		confidence := d.scorer.EventScore(scores)
		if confidence < d.cfg.ConfidenceThreshold {
			d.log.Debug("candidate rejected: low confidence",
				zap.String("source", stream.Source),
				zap.Int("contact_frame", f.Index),
				zap.Float64("confidence", confidence))
			continue
		}

		event := Event{
			StartFrame:   frames[startPos].Index,
			EndFrame:     frames[endPos].Index,
			StartTime:    frames[startPos].Timestamp,
			EndTime:      frames[endPos].Timestamp,
			Duration:     duration,
			ContactFrame: f.Index,
			Confidence:   confidence,
			Source:       stream.Source,
		}
		candidates = append(candidates, event)
		d.log.Info("serve detected",
			zap.String("source", stream.Source),
			zap.Int("start_frame", event.StartFrame),
			zap.Int("end_frame", event.EndFrame),
			zap.Int("contact_frame", event.ContactFrame),
			zap.Float64("duration", event.Duration))
	}

	return ResolveOverlaps(candidates), nil
}
