//go:build unit

package attendee_test

import (
	"testing"

	"eventhub/internal/domain/attendee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistration(t *testing.T) {
	phone := "604-555-0101"
	snap := attendee.Snapshot{
		Email:       "alex@example.com",
		PhoneNumber: &phone,
	}

	t.Run("snapshot fields are carried onto the registration", func(t *testing.T) {
		reg, err := attendee.NewRegistration(1, 2, snap)
		require.NoError(t, err)

		assert.Equal(t, int64(1), reg.UserID())
		assert.Equal(t, int64(2), reg.EventID())
		assert.Equal(t, "alex@example.com", reg.Email())
		require.NotNil(t, reg.PhoneNumber())
		assert.Equal(t, phone, *reg.PhoneNumber())
		assert.False(t, reg.CheckedIn())
		assert.False(t, reg.WaiverSigned())
	})

	tests := []struct {
		name    string
		userID  int64
		eventID int64
		snap    attendee.Snapshot
		errIs   error
	}{
		{name: "missing user", userID: 0, eventID: 2, snap: snap, errIs: attendee.ErrMissingUser},
		{name: "missing event", userID: 1, eventID: 0, snap: snap, errIs: attendee.ErrMissingEvent},
		{name: "missing contact email", userID: 1, eventID: 2, snap: attendee.Snapshot{}, errIs: attendee.ErrMissingContact},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := attendee.NewRegistration(tc.userID, tc.eventID, tc.snap)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
