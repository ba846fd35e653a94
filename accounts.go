package smarttub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Account represents the authenticated user's SmartTub account.
// It is an immutable snapshot of the server record at fetch time.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// Raw is the full account record as returned by the API, for access to
	// fields this library does not model.
	Raw map[string]any `json:"-"`

	client *Client
}

// GetAccount retrieves the SmartTub account of the authenticated user.
func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()
	if session == nil {
		return nil, ErrNotLoggedIn
	}

	data, err := c.get(ctx, "accounts/"+session.AccountID)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("failed to parse account: %w (body: %s)", err, truncatePreview(data))
	}
	account.Raw = rawMap(data)
	account.client = c

	return &account, nil
}

// spaListResponse is the API response for listing spas. The list endpoint
// returns summary records only.
type spaListResponse struct {
	Content []struct {
		ID string `json:"id"`
	} `json:"content"`
}

// GetSpas returns all spas owned by the account. Because the list endpoint
// returns summaries, each spa is fetched individually for its full record.
func (a *Account) GetSpas(ctx context.Context) ([]*Spa, error) {
	data, err := a.client.get(ctx, "spas?ownerId="+url.QueryEscape(a.ID))
	if err != nil {
		return nil, err
	}

	var resp spaListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse spa list: %w (body: %s)", err, truncatePreview(data))
	}

	spas := make([]*Spa, 0, len(resp.Content))
	for _, summary := range resp.Content {
		spa, err := a.GetSpa(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		spas = append(spas, spa)
	}

	return spas, nil
}

// GetSpa returns a single spa by ID.
func (a *Account) GetSpa(ctx context.Context, spaID string) (*Spa, error) {
	if spaID == "" {
		return nil, ErrEmptySpaID
	}

	data, err := a.client.get(ctx, "spas/"+spaID)
	if err != nil {
		return nil, err
	}

	var spa Spa
	if err := json.Unmarshal(data, &spa); err != nil {
		return nil, fmt.Errorf("failed to parse spa: %w (body: %s)", err, truncatePreview(data))
	}
	spa.Raw = rawMap(data)
	spa.client = a.client
	spa.account = a

	return &spa, nil
}
