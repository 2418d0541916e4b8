package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/dbmetrics"
	"github.com/m04kA/hotel-booking-service/pkg/psqlbuilder"
)

// pqForeignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
const pqForeignKeyViolation = "23503"

// Имена внешних ключей таблицы bookings (миграция 00003)
const (
	constraintRoomFK    = "bookings_room_id_fkey"
	constraintProfileFK = "bookings_user_id_fkey"
)

var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.room_id",
	"b.check_in",
	"b.check_out",
	"b.total_price",
	"b.guests",
	"b.special_requests",
	"b.status",
	"b.created_at",
	"b.updated_at",
}

// roomSummaryColumns данные комнаты для списков бронирований (JOIN rooms)
var roomSummaryColumns = []string{
	"r.name",
	"r.room_type",
	"r.price_per_night",
	"r.image_url",
}

var bookingWithRoomColumns = append(append([]string{}, bookingColumns...), roomSummaryColumns...)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её: создание бронирования
// выполняется в одной транзакции с повторной проверкой занятых дат.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"room_id",
			"check_in",
			"check_out",
			"total_price",
			"guests",
			"special_requests",
			"status",
		).
		Values(
			booking.UserID,
			booking.RoomID,
			booking.CheckIn,
			booking.CheckOut,
			booking.TotalPrice,
			booking.Guests,
			booking.SpecialRequests,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return nil, foreignKeyError(pqErr)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с краткими данными комнаты
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingWithRoomColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingWithRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ListIntervalsByRoom возвращает интервалы бронирований комнаты с указанными статусами.
// Внутри транзакции строки блокируются (FOR UPDATE) до её завершения, чтобы
// параллельное бронирование той же комнаты дождалось результата проверки.
func (r *Repository) ListIntervalsByRoom(ctx context.Context, roomID uuid.UUID, statuses []domain.BookingStatus) ([]domain.ReservationInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("check_in", "check_out", "status").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": statusStrings}).
		OrderBy("check_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListIntervalsByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListIntervalsByRoom - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.ReservationInterval, 0)
	for rows.Next() {
		var interval domain.ReservationInterval
		if err := rows.Scan(&interval.CheckIn, &interval.CheckOut, &interval.Status); err != nil {
			return nil, fmt.Errorf("%w: ListIntervalsByRoom - scan interval: %w", ErrScanRow, err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListIntervalsByRoom - rows error: %w", ErrScanRow, err)
	}

	return intervals, nil
}

// ListByUser получает бронирования пользователя, сначала новые
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingWithRoomColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListAll получает все бронирования для администратора.
// Опционально фильтрует по статусу, сортировка: сначала новые.
func (r *Repository) ListAll(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingWithRoomColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		OrderBy("b.created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBookingWithRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// foreignKeyError различает отсутствующую комнату и отсутствующий профиль по имени ограничения
func foreignKeyError(pqErr *pq.Error) error {
	switch pqErr.Constraint {
	case constraintProfileFK:
		return fmt.Errorf("%w: Create - %s", ErrProfileReferenceNotFound, pqErr.Constraint)
	case constraintRoomFK:
		return fmt.Errorf("%w: Create - %s", ErrRoomReferenceNotFound, pqErr.Constraint)
	default:
		return fmt.Errorf("%w: Create - unexpected foreign key %s: %w", ErrExecQuery, pqErr.Constraint, pqErr)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingWithRoom(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var room domain.Room
	var specialRequests sql.NullString
	var createdAt, updatedAt sql.NullTime
	var imageURL sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.TotalPrice,
		&booking.Guests,
		&specialRequests,
		&booking.Status,
		&createdAt,
		&updatedAt,
		&room.Name,
		&room.Type,
		&room.PricePerNight,
		&imageURL,
	)
	if err != nil {
		return nil, err
	}

	if specialRequests.Valid {
		booking.SpecialRequests = &specialRequests.String
	}
	if imageURL.Valid {
		room.ImageURL = &imageURL.String
	}
	room.ID = booking.RoomID

	booking.Room = &room
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
