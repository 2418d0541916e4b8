package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/dbmetrics"
	"github.com/m04kA/hotel-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий профилей и ролей пользователей.
// Записи создает провайдер аутентификации, сервис их только читает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль пользователя
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"email",
		"full_name",
		"phone",
		"avatar_url",
		"created_at",
		"updated_at",
	).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.Profile
	var fullName, phone, avatarURL sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Email,
		&fullName,
		&phone,
		&avatarURL,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %w", ErrScanRow, err)
	}

	if fullName.Valid {
		profile.FullName = &fullName.String
	}
	if phone.Valid {
		profile.Phone = &phone.String
	}
	if avatarURL.Valid {
		profile.AvatarURL = &avatarURL.String
	}
	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return &profile, nil
}

// HasRole проверяет, назначена ли пользователю роль
func (r *Repository) HasRole(ctx context.Context, userID uuid.UUID, role domain.AppRole) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID, "role": role}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasRole - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasRole - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}
