package detect

import "sort"

// ResolveOverlaps removes overlapping serve events from one stream's
// candidate list, keeping the higher-confidence event of each overlapping
// pair. The result is strictly ordered by start frame with no overlapping
// ranges, and resolving an already-resolved list returns it unchanged.
func ResolveOverlaps(events []Event) []Event {
	if len(events) == 0 {
		return []Event{}
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartFrame < sorted[j].StartFrame
	})

	accepted := []Event{sorted[0]}
	for _, candidate := range sorted[1:] {
		last := accepted[len(accepted)-1]
		if candidate.StartFrame <= last.EndFrame {
			if candidate.Confidence > last.Confidence {
				accepted[len(accepted)-1] = candidate
			}
			continue
		}
		accepted = append(accepted, candidate)
	}

	return accepted
}
