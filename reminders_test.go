package smarttub

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpa_GetReminders(t *testing.T) {
	spa := newTestSpa(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/spas/spa-1/reminders", r.URL.Path)
		io.WriteString(w, `{"reminders":[
			{"id":"rem-1","name":"WATER","remainingDuration":12,"snoozed":false,"state":"ACTIVE","lastUpdated":"2024-06-01T10:30:00.000Z"},
			{"id":"rem-2","name":"FILTER01","remainingDuration":-3,"snoozed":true,"state":"OVERDUE","lastUpdated":"2024-05-15T08:00:00Z"}
		],"filters":[]}`)
	})

	reminders, err := spa.GetReminders(context.Background())
	require.NoError(t, err)
	require.Len(t, reminders, 2)

	first := reminders[0]
	assert.Equal(t, "rem-1", first.ID)
	assert.Equal(t, "WATER", first.Name)
	assert.Equal(t, 12, first.RemainingDays)
	assert.False(t, first.Snoozed)
	assert.Equal(t, "ACTIVE", first.State)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC), first.LastUpdated.UTC())
	assert.Equal(t, "rem-1", first.Raw["id"])

	second := reminders[1]
	assert.Equal(t, -3, second.RemainingDays)
	assert.True(t, second.Snoozed)
	assert.Equal(t, "OVERDUE", second.State)
}
