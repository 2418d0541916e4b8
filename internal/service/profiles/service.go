package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	profileRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/profile"
	"github.com/m04kA/hotel-booking-service/internal/service/profiles/models"
)

// Service сервис профилей пользователей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetByID получает профиль пользователя вместе с признаком администратора
func (s *Service) GetByID(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetByID: profile of user=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetByID: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainProfile(profile, isAdmin), nil
}

// IsAdmin проверяет, назначена ли пользователю роль администратора
func (s *Service) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	isAdmin, err := s.profileRepo.HasRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		s.logger.Error("IsAdmin: repository error for user=%s: %v", userID, err)
		return false, fmt.Errorf("%w: IsAdmin - repository error: %v", ErrInternal, err)
	}
	return isAdmin, nil
}
