//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"eventhub/internal/handler/api"
	resdto "eventhub/internal/handler/dto/response"
	"eventhub/internal/usecase/commands"
	"eventhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockCheckInCommands struct {
	mock.Mock
}

func (m *mockCheckInCommands) CheckIn(ctx context.Context, code string, eventID int64) (*commands.CheckInResult, error) {
	args := m.Called(ctx, code, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.CheckInResult), args.Error(1)
}

type CheckInHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *mockCheckInCommands
	handler      *api.CheckInHandler
}

func (s *CheckInHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = new(mockCheckInCommands)
	s.handler = api.NewCheckInHandler(s.mockCommands)

	s.router.POST("/attendees/check-in", s.handler.CheckIn)
}

// SetupSubTest rebuilds the mocks for each s.Run so recorded calls from one
// subtest don't leak into the next one's AssertNotCalled checks.
func (s *CheckInHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestCheckInHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckInHandlerTestSuite))
}

func (s *CheckInHandlerTestSuite) TestCheckIn() {
	url := "/attendees/check-in"
	reqBody := map[string]any{
		"qrCode":  "QR-0123456789abcdef0123456789abcdef",
		"eventId": 42,
	}

	s.Run("success: returns 200 with the admitted attendee", func() {
		s.mockCommands.On("CheckIn", mock.Anything, "QR-0123456789abcdef0123456789abcdef", int64(42)).
			Return(&commands.CheckInResult{AttendeeID: 11, Email: "alex@example.com", CheckedIn: true}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(11), response.AttendeeID)
		s.Equal("alex@example.com", response.Email)
		s.True(response.CheckedIn)
		s.mockCommands.AssertExpectations(s.T())
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing code", body: map[string]any{"eventId": 42}},
			{name: "missing event id", body: map[string]any{"qrCode": "QR-abc"}},
			{name: "empty body", body: map[string]any{}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Code and event ID are required")
				s.mockCommands.AssertNotCalled(s.T(), "CheckIn", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	s.Run("error: maps redemption outcomes to distinct statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown code",
				commandsError:  commands.ErrCodeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Code not recognized",
			},
			{
				name:           "replayed code",
				commandsError:  commands.ErrCodeAlreadyRedeemed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Code already redeemed",
			},
			{
				name:           "wrong event",
				commandsError:  commands.ErrEventMismatch,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Code does not belong to this event",
			},
			{
				name:           "dangling registration",
				commandsError:  commands.ErrAttendeeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Registration missing for code",
			},
			{
				name:           "invalid input",
				commandsError:  commands.ErrInvalidCheckIn,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Code and event ID are required",
			},
			{
				name:           "store failure",
				commandsError:  commands.ErrCheckInFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.On("CheckIn", mock.Anything, "QR-0123456789abcdef0123456789abcdef", int64(42)).
					Return(nil, tc.commandsError).Once()

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
		s.mockCommands.AssertExpectations(s.T())
	})

	s.Run("error: failures render the standard error envelope", func() {
		s.mockCommands.On("CheckIn", mock.Anything, "QR-0123456789abcdef0123456789abcdef", int64(42)).
			Return(nil, commands.ErrCodeNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusNotFound, rec.Code)
		s.JSONEq(`{"error": {"message": "Code not recognized"}}`, rec.Body.String())
	})
}
