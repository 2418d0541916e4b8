package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// Request модели

// ListRoomsRequest запрос каталога комнат
type ListRoomsRequest struct {
	Search        string  `json:"search,omitempty"`
	Type          *string `json:"type,omitempty"`
	Sort          string  `json:"sort,omitempty"` // newest | price_asc | price_desc
	AvailableOnly bool    `json:"availableOnly,omitempty"`
	Limit         int     `json:"limit,omitempty"`
}

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Name          string   `json:"name"`
	Description   *string  `json:"description,omitempty"`
	Type          string   `json:"roomType"`
	PricePerNight float64  `json:"pricePerNight"`
	Capacity      int      `json:"capacity"`
	SizeSqft      *int     `json:"sizeSqft,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsAvailable   *bool    `json:"isAvailable,omitempty"` // по умолчанию true
}

// UpdateRoomRequest запрос на обновление комнаты.
// Все поля опциональны - обновляются только переданные значения
type UpdateRoomRequest struct {
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Type          *string   `json:"roomType,omitempty"`
	PricePerNight *float64  `json:"pricePerNight,omitempty"`
	Capacity      *int      `json:"capacity,omitempty"`
	SizeSqft      *int      `json:"sizeSqft,omitempty"`
	Amenities     *[]string `json:"amenities,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Images        *[]string `json:"images,omitempty"`
	IsAvailable   *bool     `json:"isAvailable,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRoomsRequest) ToDomainFilter() (domain.RoomFilter, error) {
	filter := domain.RoomFilter{
		Search:        r.Search,
		AvailableOnly: r.AvailableOnly,
		Sort:          domain.SortNewest,
		Limit:         r.Limit,
	}

	if r.Type != nil && *r.Type != "" {
		roomType, err := domain.ParseRoomType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &roomType
	}

	if r.Sort != "" {
		sort, err := domain.ParseRoomSort(r.Sort)
		if err != nil {
			return filter, err
		}
		filter.Sort = sort
	}

	return filter, nil
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Type          string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	Capacity      int       `json:"capacity"`
	SizeSqft      *int      `json:"sizeSqft,omitempty"`
	Amenities     []string  `json:"amenities"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Type:          string(r.Type),
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		SizeSqft:      r.SizeSqft,
		Amenities:     nonNil(r.Amenities),
		ImageURL:      r.ImageURL,
		Images:        nonNil(r.Images),
		IsAvailable:   r.IsAvailable,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(r))
	}

	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
