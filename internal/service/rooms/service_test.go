package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	roomRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/room"
	"github.com/m04kA/hotel-booking-service/internal/service/rooms/models"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	created, _ := args.Get(0).(*domain.Room)
	return created, args.Error(1)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

func (m *mockRoomRepo) List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	args := m.Called(ctx, filter)
	rooms, _ := args.Get(0).([]*domain.Room)
	return rooms, args.Error(1)
}

func (m *mockRoomRepo) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	updated, _ := args.Get(0).(*domain.Room)
	return updated, args.Error(1)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func suite() *domain.Room {
	return &domain.Room{
		ID:            uuid.New(),
		Name:          "Royal Suite",
		Type:          domain.RoomSuite,
		PricePerNight: 450,
		Capacity:      4,
		IsAvailable:   true,
	}
}

func TestList_BuildsFilter(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})

	expected := domain.RoomFilter{
		Search:        "ocean",
		Type:          ptr.Ptr(domain.RoomDeluxe),
		AvailableOnly: true,
		Sort:          domain.SortPriceAsc,
		Limit:         10,
	}
	repo.On("List", mock.Anything, expected).Return([]*domain.Room{suite()}, nil)

	resp, err := svc.List(context.Background(), &models.ListRoomsRequest{
		Search:        "  ocean ",
		Type:          ptr.Ptr("deluxe"),
		Sort:          "price_asc",
		AvailableOnly: true,
		Limit:         10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "suite", resp.Rooms[0].Type)
	assert.Equal(t, []string{}, resp.Rooms[0].Amenities)
	repo.AssertExpectations(t)
}

func TestList_InvalidInput(t *testing.T) {
	svc := NewService(&mockRoomRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.ListRoomsRequest
	}{
		{name: "unknown type", req: models.ListRoomsRequest{Type: ptr.Ptr("penthouse")}},
		{name: "unknown sort", req: models.ListRoomsRequest{Sort: "rating"}},
		{name: "negative limit", req: models.ListRoomsRequest{Limit: -1}},
		{name: "limit too large", req: models.ListRoomsRequest{Limit: domain.MaxRoomsPageSize + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFeatured_AvailableNewestThree(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})

	repo.On("List", mock.Anything, domain.RoomFilter{
		AvailableOnly: true,
		Sort:          domain.SortNewest,
		Limit:         3,
	}).Return([]*domain.Room{}, nil)

	resp, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
	assert.NotNil(t, resp.Rooms)
}

func TestGetByID(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})
	room := suite()
	missing := uuid.New()
	broken := uuid.New()

	repo.On("GetByID", mock.Anything, room.ID).Return(room, nil)
	repo.On("GetByID", mock.Anything, missing).Return(nil, roomRepo.ErrRoomNotFound)
	repo.On("GetByID", mock.Anything, broken).Return(nil, errors.New("timeout"))

	resp, err := svc.GetByID(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, resp.ID)

	_, err = svc.GetByID(context.Background(), missing)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.GetByID(context.Background(), broken)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreate(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Name == "Garden Room" && r.Type == domain.RoomStandard && r.IsAvailable
	})).Return(&domain.Room{ID: uuid.New(), Name: "Garden Room", Type: domain.RoomStandard, PricePerNight: 120, Capacity: 2, IsAvailable: true}, nil)

	resp, err := svc.Create(context.Background(), &models.CreateRoomRequest{
		Name:          " Garden Room ",
		Type:          "standard",
		PricePerNight: 120,
		Capacity:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Garden Room", resp.Name)
	assert.True(t, resp.IsAvailable)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&mockRoomRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateRoomRequest
	}{
		{name: "unknown type", req: models.CreateRoomRequest{Name: "A", Type: "villa", PricePerNight: 1, Capacity: 1}},
		{name: "empty name", req: models.CreateRoomRequest{Name: "  ", Type: "suite", PricePerNight: 1, Capacity: 1}},
		{name: "zero price", req: models.CreateRoomRequest{Name: "A", Type: "suite", Capacity: 1}},
		{name: "zero capacity", req: models.CreateRoomRequest{Name: "A", Type: "suite", PricePerNight: 1}},
		{name: "capacity too large", req: models.CreateRoomRequest{Name: "A", Type: "suite", PricePerNight: 1, Capacity: domain.MaxRoomCapacity + 1}},
		{name: "negative size", req: models.CreateRoomRequest{Name: "A", Type: "suite", PricePerNight: 1, Capacity: 1, SizeSqft: ptr.Ptr(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})
	room := suite()

	repo.On("GetByID", mock.Anything, room.ID).Return(room, nil)
	// Репозиторий возвращает тот же объект, который получил
	repo.On("Update", mock.Anything, room).Return(room, nil)

	resp, err := svc.Update(context.Background(), room.ID, &models.UpdateRoomRequest{
		PricePerNight: ptr.Ptr(500.0),
		IsAvailable:   ptr.Ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 500.0, resp.PricePerNight)
	assert.False(t, resp.IsAvailable)
	assert.Equal(t, "Royal Suite", resp.Name)
	assert.Equal(t, 4, resp.Capacity)
}

func TestUpdate_Errors(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})
	room := suite()
	missing := uuid.New()

	repo.On("GetByID", mock.Anything, room.ID).Return(room, nil)
	repo.On("GetByID", mock.Anything, missing).Return(nil, roomRepo.ErrRoomNotFound)

	_, err := svc.Update(context.Background(), missing, &models.UpdateRoomRequest{})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Update(context.Background(), room.ID, &models.UpdateRoomRequest{Capacity: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), room.ID, &models.UpdateRoomRequest{Type: ptr.Ptr("cabin")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewService(repo, nopLogger{})

	ok, missing, booked := uuid.New(), uuid.New(), uuid.New()
	repo.On("Delete", mock.Anything, ok).Return(nil)
	repo.On("Delete", mock.Anything, missing).Return(roomRepo.ErrRoomNotFound)
	repo.On("Delete", mock.Anything, booked).Return(roomRepo.ErrRoomHasBookings)

	assert.NoError(t, svc.Delete(context.Background(), ok))
	assert.ErrorIs(t, svc.Delete(context.Background(), missing), ErrRoomNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), booked), ErrRoomHasBookings)
}
