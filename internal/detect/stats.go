package detect

// Stats summarizes a resolved event list.
type Stats struct {
	TotalServes   int     `json:"total_serves"`
	AvgDuration   float64 `json:"avg_duration"`
	AvgConfidence float64 `json:"avg_confidence"`
	MinConfidence float64 `json:"min_confidence"`
	MaxConfidence float64 `json:"max_confidence"`
}

// ComputeStats calculates summary statistics for a list of serve events.
// An empty list yields a zero Stats.
func ComputeStats(events []Event) Stats {
	if len(events) == 0 {
		return Stats{}
	}

	s := Stats{
		TotalServes:   len(events),
		MinConfidence: events[0].Confidence,
		MaxConfidence: events[0].Confidence,
	}

	var durationSum, confidenceSum float64
	for _, e := range events {
		durationSum += e.Duration
		confidenceSum += e.Confidence
		if e.Confidence < s.MinConfidence {
			s.MinConfidence = e.Confidence
		}
		if e.Confidence > s.MaxConfidence {
			s.MaxConfidence = e.Confidence
		}
	}
	s.AvgDuration = durationSum / float64(len(events))
	s.AvgConfidence = confidenceSum / float64(len(events))
	return s
}
