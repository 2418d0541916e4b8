package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	roomRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/room"
	"github.com/m04kA/hotel-booking-service/internal/service/rooms/models"
)

// Service сервис каталога комнат
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List получает каталог комнат с фильтрацией и сортировкой
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: search=%q, type=%v, sort=%s, availableOnly=%t", req.Search, req.Type, req.Sort, req.AvailableOnly)

	if req.Limit < 0 || req.Limit > domain.MaxRoomsPageSize {
		return nil, fmt.Errorf("%w: limit must be between 0 and %d", ErrInvalidInput, domain.MaxRoomsPageSize)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.Search = strings.TrimSpace(filter.Search)

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// Featured получает витрину главной страницы: последние открытые для бронирования комнаты
func (s *Service) Featured(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx, domain.RoomFilter{
		AvailableOnly: true,
		Sort:          domain.SortNewest,
		Limit:         domain.DefaultFeaturedLimit,
	})
	if err != nil {
		s.logger.Error("Featured: repository error: %v", err)
		return nil, fmt.Errorf("%w: Featured - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.RoomResponse, error) {
	room, err := s.getRoom(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainRoom(room), nil
}

// Create создает комнату. Доступно только администратору.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q, type=%s", req.Name, req.Type)

	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		s.logger.Warn("Create: invalid room type=%s", req.Type)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	room := &domain.Room{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Type:          roomType,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		SizeSqft:      req.SizeSqft,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
		Images:        req.Images,
		IsAvailable:   true,
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%s", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update частично обновляет комнату. Доступно только администратору.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%s", id)

	// 1. Получаем текущее состояние
	room, err := s.getRoom(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 2. Применяем переданные поля
	if req.Name != nil {
		room.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	if req.Type != nil {
		roomType, err := domain.ParseRoomType(*req.Type)
		if err != nil {
			s.logger.Warn("Update: invalid room type=%s", *req.Type)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		room.Type = roomType
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.SizeSqft != nil {
		room.SizeSqft = req.SizeSqft
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.ImageURL != nil {
		room.ImageURL = req.ImageURL
	}
	if req.Images != nil {
		room.Images = *req.Images
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	// 3. Валидируем итоговое состояние
	if err := validateRoom(room); err != nil {
		s.logger.Warn("Update: validation failed for room id=%s: %v", id, err)
		return nil, err
	}

	// 4. Сохраняем
	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s deleted concurrently", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%s", id)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет комнату. Доступно только администратору.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting room id=%s", id)

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Delete: room id=%s not found", id)
			return ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomHasBookings):
			s.logger.Warn("Delete: room id=%s has bookings", id)
			return ErrRoomHasBookings
		default:
			s.logger.Error("Delete: repository error for room id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted room id=%s", id)
	return nil
}

func (s *Service) getRoom(ctx context.Context, op string, id uuid.UUID) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%s not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}

// validateRoom проверяет бизнес-ограничения карточки комнаты
func validateRoom(room *domain.Room) error {
	if room.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(room.Name) > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxRoomNameLength)
	}
	if room.PricePerNight <= 0 {
		return fmt.Errorf("%w: pricePerNight must be positive", ErrInvalidInput)
	}
	if room.Capacity < domain.MinGuests || room.Capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxRoomCapacity)
	}
	if room.SizeSqft != nil && *room.SizeSqft <= 0 {
		return fmt.Errorf("%w: sizeSqft must be positive", ErrInvalidInput)
	}
	return nil
}
