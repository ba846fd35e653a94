package smarttub

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lightListBody = `{"lights":[
	{"zone":1,"color":{"red":0,"green":0,"blue":255,"white":0},"intensity":50,"mode":"BLUE"},
	{"zone":2,"color":{"red":0,"green":0,"blue":0,"white":0},"intensity":0,"mode":"OFF"}
]}`

func newTestLights(t *testing.T, got *capturedRequest) []*Light {
	t.Helper()
	spa := newTestSpa(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/spas/spa-1/lights" && r.Method == http.MethodGet {
			io.WriteString(w, lightListBody)
			return
		}
		if got != nil {
			captureRequest(t, got)(w, r)
			return
		}
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	})

	lights, err := spa.GetLights(context.Background())
	require.NoError(t, err)
	require.Len(t, lights, 2)
	return lights
}

func TestSpa_GetLights(t *testing.T) {
	lights := newTestLights(t, nil)

	assert.Equal(t, 1, lights[0].Zone)
	assert.Equal(t, LightModeBlue, lights[0].Mode)
	assert.Equal(t, 50, lights[0].Intensity)
	assert.Equal(t, 255, lights[0].Color.Blue)
	assert.Equal(t, LightModeOff, lights[1].Mode)
	assert.Equal(t, 0, lights[1].Intensity)
}

func TestLight_Set(t *testing.T) {
	t.Run("nonzero intensity with OFF is rejected without a request", func(t *testing.T) {
		lights := newTestLights(t, nil)
		err := lights[0].Set(context.Background(), 5, LightModeOff)
		assert.ErrorIs(t, err, ErrLightIntensity)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("zero intensity with a color mode is rejected", func(t *testing.T) {
		lights := newTestLights(t, nil)
		err := lights[0].Set(context.Background(), 0, LightModeBlue)
		assert.ErrorIs(t, err, ErrLightIntensity)
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		lights := newTestLights(t, nil)
		err := lights[0].Set(context.Background(), 50, "PINK")
		assert.ErrorIs(t, err, ErrInvalidLightMode)
	})

	t.Run("zero intensity with OFF succeeds", func(t *testing.T) {
		var got capturedRequest
		lights := newTestLights(t, &got)

		require.NoError(t, lights[0].Set(context.Background(), 0, LightModeOff))
		assert.Equal(t, http.MethodPatch, got.Method)
		assert.Equal(t, "/spas/spa-1/lights/1", got.Path)
		assert.Equal(t, map[string]any{"intensity": float64(0), "mode": "OFF"}, got.Body)
	})

	t.Run("color mode with intensity succeeds", func(t *testing.T) {
		var got capturedRequest
		lights := newTestLights(t, &got)

		require.NoError(t, lights[1].Set(context.Background(), 50, LightModeBlue))
		assert.Equal(t, http.MethodPatch, got.Method)
		assert.Equal(t, "/spas/spa-1/lights/2", got.Path)
		assert.Equal(t, map[string]any{"intensity": float64(50), "mode": "BLUE"}, got.Body)
	})
}
