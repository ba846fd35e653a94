package smarttub

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// WithLogger configures a structured logger for the client.
// When set, the client logs API requests and responses at debug level and
// failures at warn/error level.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	client := smarttub.NewClient(smarttub.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// logResponse logs the outcome of an API call if a logger is configured.
func (c *Client) logResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration, err error) {
	if c.logger == nil {
		return
	}

	level := slog.LevelDebug
	if statusCode >= 400 {
		level = slog.LevelWarn
	}
	if statusCode >= 500 || (err != nil && statusCode == 0) {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", statusCode),
		slog.Duration("duration", duration),
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	c.logger.LogAttrs(ctx, level, "api_response", attrs...)
}

// LoggingTransport wraps an http.RoundTripper and logs requests/responses.
// It can be installed on a custom HTTP client passed via WithHTTPClient to
// log traffic below the client's own logging (including the login exchange).
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// RoundTrip implements http.RoundTripper with logging.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	if t.Logger != nil {
		t.Logger.LogAttrs(req.Context(), slog.LevelDebug, "api_request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
		)
	}

	resp, err := t.Base.RoundTrip(req)
	duration := time.Since(start)

	if t.Logger != nil {
		if err != nil {
			t.Logger.LogAttrs(req.Context(), slog.LevelError, "api_error",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.Duration("duration", duration),
				slog.String("error", err.Error()),
			)
		} else {
			level := slog.LevelDebug
			if resp.StatusCode >= 400 {
				level = slog.LevelWarn
			}
			if resp.StatusCode >= 500 {
				level = slog.LevelError
			}

			t.Logger.LogAttrs(req.Context(), level, "api_response",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.Int("status", resp.StatusCode),
				slog.Duration("duration", duration),
			)
		}
	}

	return resp, err
}
