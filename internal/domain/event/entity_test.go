//go:build unit

package event_test

import (
	"testing"
	"time"

	"eventhub/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	date := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	location := "Engineering Atrium"

	t.Run("valid event", func(t *testing.T) {
		ev, err := event.NewEvent("  Welcome BBQ  ", date, &location)
		require.NoError(t, err)

		assert.Equal(t, "Welcome BBQ", ev.Name())
		assert.Equal(t, date, ev.Date())
		require.NotNil(t, ev.Location())
		assert.Equal(t, location, *ev.Location())
	})

	t.Run("location is optional", func(t *testing.T) {
		ev, err := event.NewEvent("Exam Cram", date, nil)
		require.NoError(t, err)
		assert.Nil(t, ev.Location())
	})

	tests := []struct {
		name      string
		eventName string
		date      time.Time
		errIs     error
	}{
		{name: "empty name", eventName: "", date: date, errIs: event.ErrMissingName},
		{name: "whitespace name", eventName: "   ", date: date, errIs: event.ErrMissingName},
		{name: "zero date", eventName: "Welcome BBQ", date: time.Time{}, errIs: event.ErrMissingDate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := event.NewEvent(tc.eventName, tc.date, nil)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
