package delete_room

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/hotel-booking-service/internal/service/rooms"
)

type mockService struct{ mock.Mock }

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: rooms.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "has bookings", err: rooms.ErrRoomHasBookings, wantStatus: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roomID := uuid.New()
			svc := &mockService{}
			svc.On("Delete", mock.Anything, roomID).Return(tt.err)

			r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/rooms/x", nil)
			r = mux.SetURLVars(r, map[string]string{"roomId": roomID.String()})
			w := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
