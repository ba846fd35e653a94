package smarttub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSpa returns a spa bound to a logged-in client. Requests beyond the
// account and spa fetch are delegated to handler; tests that expect no HTTP
// traffic pass a handler that fails the test.
func newTestSpa(t *testing.T, handler http.HandlerFunc) *Spa {
	t.Helper()
	client := newLoggedInClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts/" + testAccountID:
			io.WriteString(w, `{"id":"account-1","email":"user@example.com"}`)
		case "/spas/spa-1":
			io.WriteString(w, `{"id":"spa-1","brand":"Jacuzzi","model":"J-355"}`)
		default:
			handler(w, r)
		}
	})

	account, err := client.GetAccount(context.Background())
	require.NoError(t, err)
	spa, err := account.GetSpa(context.Background(), "spa-1")
	require.NoError(t, err)
	return spa
}

// rejectRequests fails the test on any unexpected HTTP call.
func rejectRequests(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}
}

// captureRequest records the next request's method, path, and decoded body.
type capturedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

func captureRequest(t *testing.T, into *capturedRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		into.Method = r.Method
		into.Path = r.URL.Path
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				into.Body = body
			}
		}
		io.WriteString(w, `{}`)
	}
}

func TestSpa_GetStatus(t *testing.T) {
	spa := newTestSpa(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/spas/spa-1/status", r.URL.Path)
		io.WriteString(w, `{"state":"NORMAL","water":{"temperature":38.5}}`)
	})

	status, err := spa.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "NORMAL", status["state"])
}

func TestSpa_GetDebugStatus(t *testing.T) {
	spa := newTestSpa(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/spas/spa-1/debugStatus", r.URL.Path)
		io.WriteString(w, `{"debugStatus":{"freeMemory":1024}}`)
	})

	debug, err := spa.GetDebugStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(1024), debug["freeMemory"])
}

func TestSpa_GetErrors(t *testing.T) {
	spa := newTestSpa(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/spas/spa-1/errors", r.URL.Path)
		io.WriteString(w, `{"content":[{"code":"FLO","title":"Flow error"}]}`)
	})

	spaErrors, err := spa.GetErrors(context.Background())
	require.NoError(t, err)
	require.Len(t, spaErrors, 1)
	assert.Equal(t, "FLO", spaErrors[0]["code"])
}

func TestSpa_SetHeatMode(t *testing.T) {
	t.Run("invalid mode issues no HTTP call", func(t *testing.T) {
		spa := newTestSpa(t, rejectRequests(t))

		err := spa.SetHeatMode(context.Background(), "INVALID")
		assert.ErrorIs(t, err, ErrInvalidHeatMode)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("valid mode patches config", func(t *testing.T) {
		var got capturedRequest
		spa := newTestSpa(t, captureRequest(t, &got))

		require.NoError(t, spa.SetHeatMode(context.Background(), HeatModeAuto))
		assert.Equal(t, http.MethodPatch, got.Method)
		assert.Equal(t, "/spas/spa-1/config", got.Path)
		assert.Equal(t, map[string]any{"heatMode": "AUTO"}, got.Body)
	})
}

func TestSpa_SetSecondaryFiltrationMode(t *testing.T) {
	t.Run("invalid mode issues no HTTP call", func(t *testing.T) {
		spa := newTestSpa(t, rejectRequests(t))
		err := spa.SetSecondaryFiltrationMode(context.Background(), "CONSTANT")
		assert.ErrorIs(t, err, ErrInvalidFiltrationMode)
	})

	t.Run("valid mode patches config", func(t *testing.T) {
		var got capturedRequest
		spa := newTestSpa(t, captureRequest(t, &got))

		require.NoError(t, spa.SetSecondaryFiltrationMode(context.Background(), SecondaryFiltrationAway))
		assert.Equal(t, http.MethodPatch, got.Method)
		assert.Equal(t, "/spas/spa-1/config", got.Path)
		assert.Equal(t, map[string]any{"secondaryFiltrationConfig": "AWAY"}, got.Body)
	})
}

func TestSpa_SetTemperature(t *testing.T) {
	var got capturedRequest
	spa := newTestSpa(t, captureRequest(t, &got))

	require.NoError(t, spa.SetTemperature(context.Background(), 38.5))
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "/spas/spa-1/config", got.Path)
	assert.Equal(t, map[string]any{"setTemperature": 38.5}, got.Body)
}

func TestSpa_SetTemperatureFormat(t *testing.T) {
	t.Run("invalid format issues no HTTP call", func(t *testing.T) {
		spa := newTestSpa(t, rejectRequests(t))
		err := spa.SetTemperatureFormat(context.Background(), "KELVIN")
		assert.ErrorIs(t, err, ErrInvalidTemperatureFormat)
	})

	t.Run("valid format patches config", func(t *testing.T) {
		var got capturedRequest
		spa := newTestSpa(t, captureRequest(t, &got))

		require.NoError(t, spa.SetTemperatureFormat(context.Background(), TemperatureFormatCelsius))
		assert.Equal(t, http.MethodPatch, got.Method)
		assert.Equal(t, map[string]any{"displayTemperatureFormat": "CELSIUS"}, got.Body)
	})
}

func TestSpa_ToggleClearRay(t *testing.T) {
	var got capturedRequest
	spa := newTestSpa(t, captureRequest(t, &got))

	require.NoError(t, spa.ToggleClearRay(context.Background()))
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/spas/spa-1/clearray/toggle", got.Path)
}

func TestSpa_SetDateTime(t *testing.T) {
	t.Run("neither date nor time issues no HTTP call", func(t *testing.T) {
		spa := newTestSpa(t, rejectRequests(t))
		err := spa.SetDateTime(context.Background(), nil, nil)
		assert.ErrorIs(t, err, ErrDateTimeRequired)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("date only", func(t *testing.T) {
		var got capturedRequest
		spa := newTestSpa(t, captureRequest(t, &got))

		date := time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)
		require.NoError(t, spa.SetDateTime(context.Background(), &date, nil))
		assert.Equal(t, http.MethodPost, got.Method)
		assert.Equal(t, "/spas/spa-1/config", got.Path)
		assert.Equal(t, map[string]any{"dateTimeConfig": map[string]any{"date": "2024-07-14"}}, got.Body)
	})

	t.Run("time only is truncated to minutes", func(t *testing.T) {
		var got capturedRequest
		spa := newTestSpa(t, captureRequest(t, &got))

		clock := time.Date(2024, 7, 14, 21, 30, 45, 0, time.UTC)
		require.NoError(t, spa.SetDateTime(context.Background(), nil, &clock))
		assert.Equal(t, map[string]any{"dateTimeConfig": map[string]any{"time": "21:30"}}, got.Body)
	})

	t.Run("date and time together", func(t *testing.T) {
		var got capturedRequest
		spa := newTestSpa(t, captureRequest(t, &got))

		now := time.Date(2024, 7, 14, 8, 5, 0, 0, time.UTC)
		require.NoError(t, spa.SetDateTime(context.Background(), &now, &now))
		assert.Equal(t, map[string]any{
			"dateTimeConfig": map[string]any{"date": "2024-07-14", "time": "08:05"},
		}, got.Body)
	})
}
