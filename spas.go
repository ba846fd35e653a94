package smarttub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Spa represents a single hot-tub unit registered to an account.
// Fields are a snapshot of the server record at fetch time; no field is
// updated by mutating calls. Re-fetch to observe the effect of a mutation.
type Spa struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`

	// Raw is the full device record as returned by the API, for access to
	// fields this library does not model.
	Raw map[string]any `json:"-"`

	client  *Client
	account *Account
}

// Account returns the account that owns this spa.
func (s *Spa) Account() *Account {
	return s.account
}

// path builds a device-scoped request path.
func (s *Spa) path(resource string) string {
	return "spas/" + s.ID + "/" + resource
}

// GetStatus returns the current status of the spa as a raw map.
func (s *Spa) GetStatus(ctx context.Context) (Status, error) {
	data, err := s.client.get(ctx, s.path("status"))
	if err != nil {
		return nil, err
	}

	var status Status
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse spa status: %w (body: %s)", err, truncatePreview(data))
	}

	return status, nil
}

// GetDebugStatus returns low-level diagnostic information about the spa.
func (s *Spa) GetDebugStatus(ctx context.Context) (Status, error) {
	data, err := s.client.get(ctx, s.path("debugStatus"))
	if err != nil {
		return nil, err
	}

	var resp struct {
		DebugStatus Status `json:"debugStatus"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse debug status: %w (body: %s)", err, truncatePreview(data))
	}

	return resp.DebugStatus, nil
}

// GetErrors returns the spa's active error records.
func (s *Spa) GetErrors(ctx context.Context) ([]map[string]any, error) {
	data, err := s.client.get(ctx, s.path("errors"))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Content []map[string]any `json:"content"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse spa errors: %w (body: %s)", err, truncatePreview(data))
	}

	return resp.Content, nil
}

// patchConfig sends a single-field config mutation.
func (s *Spa) patchConfig(ctx context.Context, body map[string]any) error {
	_, err := s.client.patch(ctx, s.path("config"), body)
	return err
}

// SetSecondaryFiltrationMode sets the auxiliary filtration cycle mode.
func (s *Spa) SetSecondaryFiltrationMode(ctx context.Context, mode SecondaryFiltrationMode) error {
	if !mode.valid() {
		return ErrInvalidFiltrationMode
	}
	return s.patchConfig(ctx, map[string]any{"secondaryFiltrationConfig": mode})
}

// SetHeatMode sets the heater operating mode.
func (s *Spa) SetHeatMode(ctx context.Context, mode HeatMode) error {
	if !mode.valid() {
		return ErrInvalidHeatMode
	}
	return s.patchConfig(ctx, map[string]any{"heatMode": mode})
}

// SetTemperature sets the target water temperature. The value is sent
// unconverted and is interpreted in the device's configured display format.
func (s *Spa) SetTemperature(ctx context.Context, temperature float64) error {
	return s.patchConfig(ctx, map[string]any{"setTemperature": temperature})
}

// SetTemperatureFormat sets the unit the spa displays temperatures in.
func (s *Spa) SetTemperatureFormat(ctx context.Context, format TemperatureFormat) error {
	if !format.valid() {
		return ErrInvalidTemperatureFormat
	}
	return s.patchConfig(ctx, map[string]any{"displayTemperatureFormat": format})
}

// ToggleClearRay toggles the ClearRay UV sanitation feature.
func (s *Spa) ToggleClearRay(ctx context.Context) error {
	_, err := s.client.post(ctx, s.path("clearray/toggle"), nil)
	return err
}

// SetDateTime sets the spa's date, time, or both. At least one of date and
// clock must be non-nil. The date is sent as YYYY-MM-DD; the clock is
// truncated to minute precision.
func (s *Spa) SetDateTime(ctx context.Context, date, clock *time.Time) error {
	if date == nil && clock == nil {
		return ErrDateTimeRequired
	}

	config := map[string]any{}
	if date != nil {
		config["date"] = date.Format("2006-01-02")
	}
	if clock != nil {
		config["time"] = clock.Format("15:04")
	}

	_, err := s.client.post(ctx, s.path("config"), map[string]any{"dateTimeConfig": config})
	return err
}
