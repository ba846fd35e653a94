package smarttub

import (
	"encoding/json"
	"time"
)

// truncatePreview returns a truncated string for error messages.
func truncatePreview(data []byte) string {
	s := string(data)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}

// rawMap re-decodes data into a generic map for the Raw escape-hatch fields.
// Returns nil if data is not a JSON object.
func rawMap(data []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// parseTimestamp parses the ISO-8601 timestamps the API emits.
// Returns the zero time if the value is empty or unparseable.
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts
	}
	return time.Time{}
}
