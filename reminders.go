package smarttub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Reminder represents a maintenance reminder on a spa (filter change, water
// refresh, and so on), as a read-only snapshot at fetch time.
type Reminder struct {
	ID            string
	Name          string
	RemainingDays int
	Snoozed       bool
	State         string
	LastUpdated   time.Time

	// Raw is the full reminder record as returned by the API.
	Raw map[string]any

	spa *Spa
}

// reminderRecord is the wire form of a reminder.
type reminderRecord struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	RemainingDuration int    `json:"remainingDuration"`
	Snoozed           bool   `json:"snoozed"`
	State             string `json:"state"`
	LastUpdated       string `json:"lastUpdated"`
}

// GetReminders returns the spa's maintenance reminders.
//
// TODO: expose snoozing once the vendor documents the snooze endpoint.
func (s *Spa) GetReminders(ctx context.Context) ([]*Reminder, error) {
	data, err := s.client.get(ctx, s.path("reminders"))
	if err != nil {
		return nil, err
	}

	// The response carries both "reminders" and "filters" keys with
	// apparently identical content; only "reminders" is read.
	var resp struct {
		Reminders []json.RawMessage `json:"reminders"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse reminder list: %w (body: %s)", err, truncatePreview(data))
	}

	reminders := make([]*Reminder, 0, len(resp.Reminders))
	for _, raw := range resp.Reminders {
		var record reminderRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("failed to parse reminder: %w (body: %s)", err, truncatePreview(raw))
		}
		reminders = append(reminders, &Reminder{
			ID:            record.ID,
			Name:          record.Name,
			RemainingDays: record.RemainingDuration,
			Snoozed:       record.Snoozed,
			State:         record.State,
			LastUpdated:   parseTimestamp(record.LastUpdated),
			Raw:           rawMap(raw),
			spa:           s,
		})
	}

	return reminders, nil
}
