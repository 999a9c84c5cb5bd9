//go:build e2e

package registration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "eventhub/internal/handler/dto/response"
	"eventhub/internal/usecase/queries"
	"eventhub/tests/common/dbtest"
	"eventhub/tests/common/httptest"
	"eventhub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL         = "/api/auth/login"
	notificationsURL = "/api/notifications"

	seedPassword = "password123"
)

type registrationSuite struct {
	e2e.SharedSuite

	staffToken  string
	memberToken string
	memberID    int64
	eventID     int64
}

func TestRegistrationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(registrationSuite))
}

func (s *registrationSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB))

	var err error
	_, err = dbtest.SeedUser(s.DB, "Dana", "Okafor", "staff@example.com", seedPassword, "staff")
	require.NoError(s.T(), err)

	s.memberID, err = dbtest.SeedUser(s.DB, "Alex", "Reyes", "alex@example.com", seedPassword, "member")
	require.NoError(s.T(), err)

	s.eventID, err = dbtest.SeedEvent(s.DB, "Welcome BBQ", time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC), nil)
	require.NoError(s.T(), err)

	s.staffToken = s.login("staff@example.com")
	s.memberToken = s.login("alex@example.com")
}

func (s *registrationSuite) login(email string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		map[string]any{"email": email, "password": seedPassword}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	return response.AccessToken
}

func (s *registrationSuite) registerURL(eventID int64) string {
	return fmt.Sprintf("/api/events/%d/register", eventID)
}

func (s *registrationSuite) TestRegister() {
	s.Run("registration issues a code bound to the attendee", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(s.eventID), nil, s.memberToken)

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.NotZero(response.AttendeeID)
		s.Regexp(`^QR-[0-9a-f]{32}$`, response.QR)

		// The attendee row snapshots the user's contact email.
		var email string
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT email FROM attendees WHERE id = $1`, response.AttendeeID).Scan(&email)
		require.NoError(s.T(), err)
		s.Equal("alex@example.com", email)
	})

	s.Run("registering twice for the same event is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(s.eventID), nil, s.memberToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(s.eventID), nil, s.memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already registered")
	})

	s.Run("registering for an unknown event is a 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(9999), nil, s.memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("registration requires authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(s.eventID), nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *registrationSuite) TestUserRegistrations() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(s.eventID), nil, s.memberToken)
	var reg resdto.RegisterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &reg)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf("/api/users/%d/registrations", s.memberID), nil, s.memberToken)

	var view queries.UserRegistrationsView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)

	expected := &queries.UserRegistrationsView{
		User: &queries.UserSummary{
			ID:        s.memberID,
			FirstName: "Alex",
			LastName:  "Reyes",
			Email:     "alex@example.com",
		},
		Events: []*queries.RegistrationListItem{
			{
				AttendeeID: reg.AttendeeID,
				Code:       &reg.QR,
				EventID:    s.eventID,
				EventName:  "Welcome BBQ",
				CheckedIn:  false,
			},
		},
	}

	opts := []cmp.Option{
		cmpopts.IgnoreFields(queries.RegistrationListItem{}, "EventDate", "EventLocation", "RedeemedAt"),
	}

	if diff := cmp.Diff(expected, &view, opts...); diff != "" {
		s.T().Errorf("Registrations response mismatch (-want +got):\n%s", diff)
	}
}

func (s *registrationSuite) TestProfileUpdate() {
	url := fmt.Sprintf("/api/auth/users/%d", s.memberID)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url,
		map[string]any{"program": "Mechanical Engineering", "year": "3"}, s.memberToken)

	var view queries.UserView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
	require.NotNil(s.T(), view.Program)
	s.Equal("Mechanical Engineering", *view.Program)

	// Untouched fields survive a partial update.
	s.Equal("Alex", view.FirstName)
	s.Equal("alex@example.com", view.Email)
}

func (s *registrationSuite) TestRecordOwnership() {
	_, err := dbtest.SeedUser(s.DB, "Sam", "Ito", "sam@example.com", seedPassword, "member")
	require.NoError(s.T(), err)
	otherToken := s.login("sam@example.com")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(s.eventID), nil, s.memberToken)
	var reg resdto.RegisterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &reg)

	s.Run("a member cannot update another member's profile", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/auth/users/%d", s.memberID),
			map[string]any{"program": "Changed"}, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("a member cannot list another member's registrations", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/users/%d/registrations", s.memberID), nil, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("a member cannot fetch another attendee's QR image", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/registrations/%d/qr.png", reg.AttendeeID), nil, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("staff may act on any member's records", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/users/%d/registrations", s.memberID), nil, s.staffToken)
		var view queries.UserRegistrationsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		require.Len(s.T(), view.Events, 1)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/registrations/%d/qr.png", reg.AttendeeID), nil, s.staffToken)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("image/png", rec.Header().Get("Content-Type"))
	})
}

func (s *registrationSuite) TestNotifications() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.registerURL(s.eventID), nil, s.memberToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	s.Run("audience all reaches every attendee of the event", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, notificationsURL,
			map[string]any{"message": "Doors open at 6", "audience": "all", "eventId": s.eventID}, s.staffToken)

		var view queries.NotificationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
		s.Equal([]string{"alex@example.com"}, view.Recipients)
	})

	s.Run("inbox returns only messages addressed to the email", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, notificationsURL,
			map[string]any{"message": "Bring your student card", "recipients": []string{"alex@example.com"}}, s.staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			notificationsURL+"/inbox?email=alex@example.com", nil, s.memberToken)

		var inbox []*queries.NotificationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &inbox)
		require.Len(s.T(), inbox, 1)
		s.Equal("Bring your student card", inbox[0].Message)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			notificationsURL+"/inbox?email=other@example.com", nil, s.memberToken)

		var empty []*queries.NotificationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &empty)
		s.Empty(empty)
	})

	s.Run("creating notifications needs staff role", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, notificationsURL,
			map[string]any{"message": "not allowed"}, s.memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
