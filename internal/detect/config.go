// Package detect implements serve detection over a pose landmark stream: a
// frame-by-frame phase state machine with a windowed contact heuristic,
// post-hoc segment validation, and overlap resolution.
package detect

import "fmt"

// Config holds the detection thresholds for one run. All fields are
// independently overridable; second-based values are converted to frame
// counts using the stream's fps.
type Config struct {
	// MinVisibility is the minimum landmark visibility for a frame to pass
	// the frame gate.
	MinVisibility float64

	// MinServeDuration and MaxServeDuration bound the duration (seconds) of
	// an acceptable serve event.
	MinServeDuration float64
	MaxServeDuration float64

	// BufferSeconds is padded before and after the contact frame to form the
	// event range.
	BufferSeconds float64

	// CooldownFrames is the number of frames after a confirmed contact during
	// which no new detection may start.
	CooldownFrames int

	// MinGapSeconds is the minimum gap between consecutive serves.
	MinGapSeconds float64

	// ConfidenceThreshold is the minimum event confidence; candidates scoring
	// below it are discarded.
	ConfidenceThreshold float64

	// HalfWindow is the neighborhood radius (frames) for the sustained
	// high-position check of the contact heuristic.
	HalfWindow int

	// PeakWindow is the neighborhood radius (frames) searched for the wrist's
	// highest point.
	PeakWindow int

	// PeakTolerance is how far (frames) the candidate may sit from the
	// highest point and still count as the contact moment.
	PeakTolerance int
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinVisibility:       0.5,
		MinServeDuration:    1.5,
		MaxServeDuration:    8.0,
		BufferSeconds:       3.0,
		CooldownFrames:      90,
		MinGapSeconds:       2.0,
		ConfidenceThreshold: 0.5,
		HalfWindow:          10,
		PeakWindow:          15,
		PeakTolerance:       3,
	}
}

// Validate checks the configuration for inconsistencies. Invalid
// configuration fails here, at construction time, never mid-stream.
func (c Config) Validate() error {
	if c.MinVisibility < 0 || c.MinVisibility > 1 {
		return fmt.Errorf("min visibility %.2f outside [0,1]", c.MinVisibility)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold %.2f outside [0,1]", c.ConfidenceThreshold)
	}
	if c.MinServeDuration < 0 {
		return fmt.Errorf("negative min serve duration %.2f", c.MinServeDuration)
	}
	if c.MinServeDuration > c.MaxServeDuration {
		return fmt.Errorf("min serve duration %.2f exceeds max %.2f",
			c.MinServeDuration, c.MaxServeDuration)
	}
	if c.BufferSeconds < 0 {
		return fmt.Errorf("negative buffer %.2f", c.BufferSeconds)
	}
	if c.CooldownFrames < 0 {
		return fmt.Errorf("negative cooldown %d", c.CooldownFrames)
	}
	if c.MinGapSeconds < 0 {
		return fmt.Errorf("negative min gap %.2f", c.MinGapSeconds)
	}
	if c.HalfWindow <= 0 || c.PeakWindow <= 0 {
		return fmt.Errorf("contact windows must be positive, got %d and %d",
			c.HalfWindow, c.PeakWindow)
	}
	if c.PeakTolerance < 0 {
		return fmt.Errorf("negative peak tolerance %d", c.PeakTolerance)
	}
	return nil
}
