//go:build e2e

package checkin_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	resdto "eventhub/internal/handler/dto/response"
	"eventhub/tests/common/dbtest"
	"eventhub/tests/common/httptest"
	"eventhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	checkInURL = "/api/attendees/check-in"

	seedPassword = "password123"
)

type checkInSuite struct {
	e2e.SharedSuite

	staffToken  string
	memberToken string
	memberID    int64
	eventID     int64
}

func TestCheckInSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkInSuite))
}

func (s *checkInSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB))

	_, err := dbtest.SeedUser(s.DB, "Dana", "Okafor", "staff@example.com", seedPassword, "staff")
	require.NoError(s.T(), err)

	s.memberID, err = dbtest.SeedUser(s.DB, "Alex", "Reyes", "alex@example.com", seedPassword, "member")
	require.NoError(s.T(), err)

	s.eventID, err = dbtest.SeedEvent(s.DB, "Welcome BBQ", time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC), nil)
	require.NoError(s.T(), err)

	s.staffToken = s.login("staff@example.com")
	s.memberToken = s.login("alex@example.com")
}

func (s *checkInSuite) login(email string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		map[string]any{"email": email, "password": seedPassword}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	require.NotEmpty(s.T(), response.AccessToken)
	return response.AccessToken
}

func (s *checkInSuite) register(token string, eventID int64) resdto.RegisterResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("/api/events/%d/register", eventID), nil, token)

	var response resdto.RegisterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	require.NotEmpty(s.T(), response.QR)
	return response
}

func (s *checkInSuite) checkIn(token, code string, eventID int64) *stdhttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL,
		map[string]any{"qrCode": code, "eventId": eventID}, token)
}

func (s *checkInSuite) TestCheckInFlow() {
	reg := s.register(s.memberToken, s.eventID)

	s.Run("first scan admits the attendee", func() {
		rec := s.checkIn(s.staffToken, reg.QR, s.eventID)

		var response resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reg.AttendeeID, response.AttendeeID)
		s.True(response.CheckedIn)

		var checkedIn bool
		var redeemedAt *time.Time
		err := s.DB.QueryRow(s.T().Context(), `
			SELECT a.checked_in, q.checked_in_at
			FROM attendees a JOIN qr_codes q ON q.attendee_id = a.id
			WHERE a.id = $1`, reg.AttendeeID).Scan(&checkedIn, &redeemedAt)
		require.NoError(s.T(), err)
		s.True(checkedIn)
		s.NotNil(redeemedAt)
	})

	s.Run("second scan of the same code is rejected", func() {
		rec := s.checkIn(s.staffToken, reg.QR, s.eventID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Code already redeemed")
	})
}

func (s *checkInSuite) TestCheckInErrors() {
	reg := s.register(s.memberToken, s.eventID)

	s.Run("unknown code", func() {
		rec := s.checkIn(s.staffToken, "QR-ffffffffffffffffffffffffffffffff", s.eventID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Code not recognized")
	})

	s.Run("code scanned at the wrong event", func() {
		otherEventID, err := dbtest.SeedEvent(s.DB, "Exam Cram", time.Date(2026, 12, 1, 17, 0, 0, 0, time.UTC), nil)
		require.NoError(s.T(), err)

		rec := s.checkIn(s.staffToken, reg.QR, otherEventID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Code does not belong to this event")

		// A wrong-event scan must not consume the code.
		rec = s.checkIn(s.staffToken, reg.QR, s.eventID)
		var response resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("member role cannot run the check-in station", func() {
		rec := s.checkIn(s.memberToken, reg.QR, s.eventID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *checkInSuite) TestConcurrentRedemption() {
	reg := s.register(s.memberToken, s.eventID)

	const scanners = 10
	codes := make([]int, scanners)

	var wg sync.WaitGroup
	for i := range scanners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := s.checkIn(s.staffToken, reg.QR, s.eventID)
			codes[i] = rec.Code
		}()
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			succeeded++
		case http.StatusConflict:
			conflicted++
		}
	}

	// The row lock serializes the scans: exactly one wins.
	s.Equal(1, succeeded)
	s.Equal(scanners-1, conflicted)
}

func (s *checkInSuite) TestQRImage() {
	reg := s.register(s.memberToken, s.eventID)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf("/api/registrations/%d/qr.png", reg.AttendeeID), nil, s.memberToken)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get("Content-Type"))
	s.NotEmpty(rec.Body.Bytes())
}
