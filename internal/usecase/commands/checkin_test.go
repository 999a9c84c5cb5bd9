//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/infra"
	"eventhub/internal/infra/db"
	"eventhub/internal/pkg/clock"
	"eventhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCheckInRepository struct {
	mock.Mock
}

func (m *mockCheckInRepository) FindCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*CodeRow, error) {
	args := m.Called(ctx, tx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CodeRow), args.Error(1)
}

func (m *mockCheckInRepository) FindRegistration(ctx context.Context, tx db.DBTX, id int64) (*RegistrationRow, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RegistrationRow), args.Error(1)
}

func (m *mockCheckInRepository) MarkRegistrationAdmitted(ctx context.Context, tx db.DBTX, attendeeID int64, at time.Time) error {
	args := m.Called(ctx, tx, attendeeID, at)
	return args.Error(0)
}

func (m *mockCheckInRepository) MarkCodeRedeemed(ctx context.Context, tx db.DBTX, codeID int64, at time.Time) (int64, error) {
	args := m.Called(ctx, tx, codeID, at)
	return args.Get(0).(int64), args.Error(1)
}

const (
	testCode    = "QR-0123456789abcdef0123456789abcdef"
	testEventID = int64(42)
)

var testNow = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

func newCheckInHarness() (*checkInCommandsImpl, *mockCheckInRepository) {
	repo := new(mockCheckInRepository)
	c := &checkInCommandsImpl{
		repo:  repo,
		clock: clock.NewMockClock(testNow),
	}
	return c, repo
}

func freshCodeRow() *CodeRow {
	return &CodeRow{
		ID:         7,
		Code:       testCode,
		AttendeeID: 11,
		CreatedAt:  testNow.Add(-24 * time.Hour),
	}
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("success flips attendee and code together", func(t *testing.T) {
		c, repo := newCheckInHarness()
		repo.On("FindCodeForUpdate", ctx, nil, testCode).Return(freshCodeRow(), nil)
		repo.On("FindRegistration", ctx, nil, int64(11)).
			Return(&RegistrationRow{ID: 11, EventID: testEventID, Email: "alex@example.com"}, nil)
		repo.On("MarkRegistrationAdmitted", ctx, nil, int64(11), testNow).Return(nil)
		repo.On("MarkCodeRedeemed", ctx, nil, int64(7), testNow).Return(int64(1), nil)

		result, err := c.redeem(ctx, nil, testCode, testEventID)
		require.NoError(t, err)

		assert.Equal(t, int64(11), result.AttendeeID)
		assert.Equal(t, "alex@example.com", result.Email)
		assert.True(t, result.CheckedIn)
		repo.AssertExpectations(t)
	})

	t.Run("unknown code", func(t *testing.T) {
		c, repo := newCheckInHarness()
		repo.On("FindCodeForUpdate", ctx, nil, testCode).
			Return(nil, infra.WrapRepoErr("code not found", nil, infra.KindNotFound))

		_, err := c.redeem(ctx, nil, testCode, testEventID)
		assert.ErrorIs(t, err, ErrCodeNotFound)
		repo.AssertNotCalled(t, "MarkRegistrationAdmitted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "MarkCodeRedeemed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replayed code is rejected without mutation", func(t *testing.T) {
		c, repo := newCheckInHarness()
		redeemedAt := testNow.Add(-time.Hour)
		row := freshCodeRow()
		row.RedeemedAt = &redeemedAt
		repo.On("FindCodeForUpdate", ctx, nil, testCode).Return(row, nil)

		_, err := c.redeem(ctx, nil, testCode, testEventID)
		assert.ErrorIs(t, err, ErrCodeAlreadyRedeemed)
		repo.AssertNotCalled(t, "FindRegistration", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "MarkRegistrationAdmitted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "MarkCodeRedeemed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("code scanned at the wrong event", func(t *testing.T) {
		c, repo := newCheckInHarness()
		repo.On("FindCodeForUpdate", ctx, nil, testCode).Return(freshCodeRow(), nil)
		repo.On("FindRegistration", ctx, nil, int64(11)).
			Return(&RegistrationRow{ID: 11, EventID: testEventID + 1, Email: "alex@example.com"}, nil)

		_, err := c.redeem(ctx, nil, testCode, testEventID)
		assert.ErrorIs(t, err, ErrEventMismatch)
		repo.AssertNotCalled(t, "MarkRegistrationAdmitted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "MarkCodeRedeemed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("dangling code row", func(t *testing.T) {
		c, repo := newCheckInHarness()
		repo.On("FindCodeForUpdate", ctx, nil, testCode).Return(freshCodeRow(), nil)
		repo.On("FindRegistration", ctx, nil, int64(11)).
			Return(nil, infra.WrapRepoErr("attendee not found", nil, infra.KindNotFound))

		_, err := c.redeem(ctx, nil, testCode, testEventID)
		assert.ErrorIs(t, err, ErrAttendeeNotFound)
	})

	t.Run("conditional update touching zero rows means a lost race", func(t *testing.T) {
		c, repo := newCheckInHarness()
		repo.On("FindCodeForUpdate", ctx, nil, testCode).Return(freshCodeRow(), nil)
		repo.On("FindRegistration", ctx, nil, int64(11)).
			Return(&RegistrationRow{ID: 11, EventID: testEventID, Email: "alex@example.com"}, nil)
		repo.On("MarkRegistrationAdmitted", ctx, nil, int64(11), testNow).Return(nil)
		repo.On("MarkCodeRedeemed", ctx, nil, int64(7), testNow).Return(int64(0), nil)

		_, err := c.redeem(ctx, nil, testCode, testEventID)
		assert.ErrorIs(t, err, ErrCodeAlreadyRedeemed)
	})

	t.Run("store failure surfaces for rollback", func(t *testing.T) {
		c, repo := newCheckInHarness()
		storeErr := infra.WrapRepoErr("failed to mark attendee admitted", errs.New("connection reset"))
		repo.On("FindCodeForUpdate", ctx, nil, testCode).Return(freshCodeRow(), nil)
		repo.On("FindRegistration", ctx, nil, int64(11)).
			Return(&RegistrationRow{ID: 11, EventID: testEventID, Email: "alex@example.com"}, nil)
		repo.On("MarkRegistrationAdmitted", ctx, nil, int64(11), testNow).Return(storeErr)

		_, err := c.redeem(ctx, nil, testCode, testEventID)
		require.Error(t, err)
		assert.False(t, isTerminalCheckInError(err))
	})
}

func TestCheckInValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		code    string
		eventID int64
	}{
		{name: "empty code", code: "", eventID: testEventID},
		{name: "zero event id", code: testCode, eventID: 0},
		{name: "negative event id", code: testCode, eventID: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, repo := newCheckInHarness()

			_, err := c.CheckIn(ctx, tc.code, tc.eventID)
			assert.ErrorIs(t, err, ErrInvalidCheckIn)
			repo.AssertNotCalled(t, "FindCodeForUpdate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIsTerminalCheckInError(t *testing.T) {
	terminal := []error{ErrCodeNotFound, ErrCodeAlreadyRedeemed, ErrEventMismatch, ErrAttendeeNotFound}
	for _, sentinel := range terminal {
		assert.True(t, isTerminalCheckInError(sentinel), sentinel.Error())
		assert.True(t, isTerminalCheckInError(errs.Wrap(sentinel, "wrapped")), sentinel.Error())
	}

	assert.False(t, isTerminalCheckInError(ErrCheckInFailed))
	assert.False(t, isTerminalCheckInError(errs.New("db down")))
}
