package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/henriquefukushima/serve-ai-analysis/internal/detect"
)

// SaveEvents writes a serve event list to a JSON file. The encoding is
// field-exact: loading the file back reproduces every event unchanged.
func SaveEvents(events []detect.Event, path string) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	return nil
}

// LoadEvents reads a serve event list from a JSON file written by SaveEvents.
func LoadEvents(path string) ([]detect.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	var events []detect.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events %s: %w", path, err)
	}
	return events, nil
}
