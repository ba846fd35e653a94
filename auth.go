package smarttub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Auth0 password-realm grant parameters, fixed by the vendor.
	// https://auth0.com/docs/api-auth/tutorials/password-grant
	authAudience  = "https://api.operation-link.com/"
	authClientID  = "dB7Rcp3rfKKh0vHw2uqkwOZmRb5WNjQC"
	authGrantType = "http://auth0.com/oauth/grant-type/password-realm"
	authRealm     = "Username-Password-Authentication"
	authScope     = "openid email offline_access User Admin"

	// accountIDClaim is the custom JWT claim carrying the account ID.
	accountIDClaim = "http://operation-link.com/account_id"
)

// Session holds the authentication state produced by a successful Login.
// It is replaced wholesale by re-login and never refreshed in place.
type Session struct {
	// AccessToken is the bearer token attached to every API request.
	AccessToken string

	// RefreshToken is returned by the auth endpoint but not used by this
	// library; callers wanting refresh must re-login or implement the
	// refresh grant themselves.
	RefreshToken string

	// ExpiresAt is the local time at which AccessToken expires. The client
	// does not refresh automatically; check Expired and re-login as needed.
	ExpiresAt time.Time

	// AccountID is extracted from the access token's claims. The token is
	// decoded without signature verification: it is received over TLS
	// directly from the vendor's auth endpoint and never accepted from a
	// third party, so the claim is trusted on that basis alone.
	AccountID string

	// Claims holds all decoded (unverified) token claims.
	Claims jwt.MapClaims
}

// Expired reports whether the access token's lifetime has elapsed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// loginRequest is the JSON body sent to the auth endpoint.
type loginRequest struct {
	Audience  string `json:"audience"`
	ClientID  string `json:"client_id"`
	GrantType string `json:"grant_type"`
	Realm     string `json:"realm"`
	Scope     string `json:"scope"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// tokenResponse is the JSON body returned by the auth endpoint.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// Login exchanges credentials for a bearer token and establishes the
// client's session. It must be called before any other operation.
//
// The username is the email address of the SmartTub account.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	payload, err := json.Marshal(loginRequest{
		Audience:  authAudience,
		ClientID:  authClientID,
		GrantType: authGrantType,
		Realm:     authRealm,
		Scope:     authScope,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AuthenticationError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w (body: %s)", err, truncatePreview(body))
	}
	if tr.TokenType != "Bearer" {
		return nil, fmt.Errorf("smarttub: unexpected token_type %q (want Bearer)", tr.TokenType)
	}

	session, err := newSession(tr)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "login",
			slog.String("username", username),
			slog.String("account_id", session.AccountID),
			slog.Time("expires_at", session.ExpiresAt),
		)
	}

	result := *session
	return &result, nil
}

// newSession decodes the token claims (without signature verification) and
// assembles the session state.
func newSession(tr tokenResponse) (*Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tr.AccessToken, claims); err != nil {
		return nil, fmt.Errorf("smarttub: failed to decode access token: %w", err)
	}

	accountID, ok := claims[accountIDClaim].(string)
	if !ok || accountID == "" {
		return nil, fmt.Errorf("smarttub: access token is missing the account ID claim %q", accountIDClaim)
	}

	return &Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
		AccountID:    accountID,
		Claims:       claims,
	}, nil
}
