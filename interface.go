package smarttub

import (
	"context"
	"encoding/json"
)

// SmartTubClient defines the interface for client-level SmartTub operations.
// Client implements this interface, enabling mocking for tests.
//
// Spa, Pump, Light, and Reminder methods are bound to concrete values
// produced by these calls and are not part of the interface.
type SmartTubClient interface {
	// Authentication
	Login(ctx context.Context, username, password string) (*Session, error)
	Session() *Session

	// Account operations
	GetAccount(ctx context.Context) (*Account, error)

	// Generic escape hatch for unmodeled endpoints
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// Compile-time check that Client satisfies the interface.
var _ SmartTubClient = (*Client)(nil)
