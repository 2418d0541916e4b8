package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	createBooking "github.com/m04kA/hotel-booking-service/internal/usecase/create_booking"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(t *testing.T, userID uuid.UUID, body string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != uuid.Nil {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	return r
}

func TestHandle_Created(t *testing.T) {
	userID, roomID := uuid.New(), uuid.New()
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID == userID &&
			req.RoomID == roomID &&
			req.SessionID == nil &&
			req.CheckIn != nil && req.CheckIn.String() == "2024-06-05" &&
			req.CheckOut != nil && req.CheckOut.String() == "2024-06-09" &&
			req.Guests == 2
	})).Return(&createBooking.Response{
		ID:         uuid.New(),
		UserID:     userID,
		RoomID:     roomID,
		CheckIn:    types.MustParseDate("2024-06-05"),
		CheckOut:   types.MustParseDate("2024-06-09"),
		Nights:     4,
		TotalPrice: 800,
		Guests:     2,
		Status:     domain.StatusConfirmed,
	}, nil)

	body := fmt.Sprintf(`{"roomId":%q,"checkIn":"2024-06-05","checkOut":"2024-06-09","guests":2}`, roomID)
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, newRequest(t, userID, body))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp BookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 800.0, resp.TotalPrice)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2024-06-09", resp.CheckOut.String())
}

func TestHandle_Unauthorized(t *testing.T) {
	uc := &mockUseCase{}
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, newRequest(t, uuid.Nil, `{}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"roomId":`},
		{name: "unknown field", body: fmt.Sprintf(`{"roomId":%q,"guests":1,"price":1}`, uuid.New())},
		{name: "room id not uuid", body: `{"roomId":"room-1","guests":1}`},
		{name: "zero guests", body: fmt.Sprintf(`{"roomId":%q,"guests":0}`, uuid.New())},
		{name: "bad date", body: fmt.Sprintf(`{"roomId":%q,"checkIn":"05.06.2024","checkOut":"2024-06-09","guests":1}`, uuid.New())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(w, newRequest(t, uuid.New(), tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "room not found", err: createBooking.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "profile not found", err: createBooking.ErrProfileNotFound, wantStatus: http.StatusNotFound},
		{name: "session not found", err: createBooking.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "session mismatch", err: createBooking.ErrSessionRoomMismatch, wantStatus: http.StatusConflict},
		{name: "invalid dates", err: createBooking.ErrInvalidDates, wantStatus: http.StatusBadRequest},
		{name: "dates unavailable", err: fmt.Errorf("%w: overlap", createBooking.ErrDatesUnavailable), wantStatus: http.StatusConflict},
		{name: "too many guests", err: createBooking.ErrTooManyGuests, wantStatus: http.StatusBadRequest},
		{name: "bookings unavailable", err: createBooking.ErrBookingsUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			body := fmt.Sprintf(`{"roomId":%q,"sessionId":%q,"guests":1}`, uuid.New(), uuid.New())
			w := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(w, newRequest(t, uuid.New(), body))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandle_CannotSubmitListsUnmetConditions(t *testing.T) {
	uc := &mockUseCase{}
	unmet := errors.Join(domain.ErrSelectionIncomplete, domain.ErrRoomUnavailable)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", createBooking.ErrCannotSubmit, unmet))

	body := fmt.Sprintf(`{"roomId":%q,"sessionId":%q,"guests":1}`, uuid.New(), uuid.New())
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, newRequest(t, uuid.New(), body))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{
		domain.ErrSelectionIncomplete.Error(),
		domain.ErrRoomUnavailable.Error(),
	}, resp.Details)
}
