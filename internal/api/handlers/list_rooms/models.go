package list_rooms

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/hotel-booking-service/internal/service/rooms/models"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

// ToServiceRequest собирает фильтр каталога из query параметров:
// search, type, sort, availableOnly, limit
func ToServiceRequest(query url.Values) (*models.ListRoomsRequest, error) {
	req := &models.ListRoomsRequest{
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
	}

	if roomType := query.Get("type"); roomType != "" && roomType != "all" {
		req.Type = ptr.Ptr(roomType)
	}

	if raw := query.Get("availableOnly"); raw != "" {
		availableOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid availableOnly: %w", err)
		}
		req.AvailableOnly = availableOnly
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: %w", err)
		}
		req.Limit = limit
	}

	return req, nil
}
