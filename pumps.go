package smarttub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Pump represents one pump on a spa, as a snapshot at fetch time.
// Speed, state, and type values are reported by the device firmware and are
// not constrained to a fixed set.
type Pump struct {
	ID    string `json:"id"`
	Speed string `json:"speed"`
	State string `json:"state"`
	Type  string `json:"type"`

	// Raw is the full pump record as returned by the API.
	Raw map[string]any `json:"-"`

	spa *Spa
}

// GetPumps returns the spa's pumps.
func (s *Spa) GetPumps(ctx context.Context) ([]*Pump, error) {
	data, err := s.client.get(ctx, s.path("pumps"))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Pumps []json.RawMessage `json:"pumps"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse pump list: %w (body: %s)", err, truncatePreview(data))
	}

	pumps := make([]*Pump, 0, len(resp.Pumps))
	for _, record := range resp.Pumps {
		var pump Pump
		if err := json.Unmarshal(record, &pump); err != nil {
			return nil, fmt.Errorf("failed to parse pump: %w (body: %s)", err, truncatePreview(record))
		}
		pump.Raw = rawMap(record)
		pump.spa = s
		pumps = append(pumps, &pump)
	}

	return pumps, nil
}

// Toggle switches the pump between its off and on states. The pump's fields
// are not updated; re-fetch the pumps to observe the new state.
func (p *Pump) Toggle(ctx context.Context) error {
	_, err := p.spa.client.post(ctx, p.spa.path("pumps/"+p.ID+"/toggle"), nil)
	return err
}
