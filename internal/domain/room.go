package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRoomType возвращается при неизвестном типе комнаты
	ErrInvalidRoomType = errors.New("invalid room type")

	// ErrInvalidRoomSort возвращается при неизвестном порядке сортировки
	ErrInvalidRoomSort = errors.New("invalid room sort")
)

// RoomType категория номера
type RoomType string

const (
	RoomStandard     RoomType = "standard"
	RoomDeluxe       RoomType = "deluxe"
	RoomSuite        RoomType = "suite"
	RoomPresidential RoomType = "presidential"
)

// RoomTypes список допустимых типов комнат
var RoomTypes = []RoomType{RoomStandard, RoomDeluxe, RoomSuite, RoomPresidential}

// ParseRoomType конвертирует строку в RoomType с валидацией
func ParseRoomType(s string) (RoomType, error) {
	for _, t := range RoomTypes {
		if RoomType(s) == t {
			return t, nil
		}
	}
	return "", ErrInvalidRoomType
}

// Room represents a hotel room in the catalog
type Room struct {
	ID            uuid.UUID
	Name          string
	Description   *string
	Type          RoomType
	PricePerNight float64
	Capacity      int
	SizeSqft      *int
	Amenities     []string
	ImageURL      *string
	Images        []string
	IsAvailable   bool // флаг администратора: комната открыта для бронирования
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FitsGuests проверяет, помещается ли указанное количество гостей
func (r *Room) FitsGuests(guests int) bool {
	return guests >= MinGuests && guests <= r.Capacity
}

// RoomSort порядок сортировки каталога
type RoomSort string

const (
	SortNewest    RoomSort = "newest"
	SortPriceAsc  RoomSort = "price_asc"
	SortPriceDesc RoomSort = "price_desc"
)

// ParseRoomSort конвертирует строку в RoomSort с валидацией
func ParseRoomSort(s string) (RoomSort, error) {
	switch RoomSort(s) {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return RoomSort(s), nil
	}
	return "", ErrInvalidRoomSort
}

// RoomFilter фильтр каталога комнат
type RoomFilter struct {
	Search        string    // Подстрока в названии или описании (опционально)
	Type          *RoomType // Фильтр по типу (опционально)
	AvailableOnly bool      // Только комнаты, открытые для бронирования
	Sort          RoomSort  // По умолчанию SortNewest
	Limit         int       // 0 = без ограничения
}
