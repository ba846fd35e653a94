package smarttub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// EnergyBucket is one aggregation bucket from an energy usage report.
// The vendor does not document the bucket schema, so buckets are returned
// as raw maps in the same way as device status.
type EnergyBucket map[string]any

// energyUsageRequest is the request body for an energy usage report.
type energyUsageRequest struct {
	Start    string         `json:"start"`
	End      string         `json:"end"`
	Interval EnergyInterval `json:"interval"`
}

// GetEnergyUsage returns the spa's energy usage between start and end,
// aggregated by the given interval.
func (s *Spa) GetEnergyUsage(ctx context.Context, interval EnergyInterval, start, end time.Time) ([]EnergyBucket, error) {
	if !interval.valid() {
		return nil, ErrInvalidEnergyInterval
	}

	body := energyUsageRequest{
		Start:    start.Format("2006-01-02"),
		End:      end.Format("2006-01-02"),
		Interval: interval,
	}

	data, err := s.client.post(ctx, s.path("energyUsage"), body)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Buckets []EnergyBucket `json:"buckets"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse energy usage: %w (body: %s)", err, truncatePreview(data))
	}

	return resp.Buckets, nil
}
