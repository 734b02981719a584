package tour

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RPM-BookingService/pkg/psqlbuilder"
)

// tourColumns полный список колонок таблицы tours в порядке сканирования
var tourColumns = []string{
	"id",
	"reference",
	"user_id",
	"property_id",
	"tour_date",
	"start_time",
	"duration_minutes",
	"status",
	"property_title",
	"customer_name",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с турами (просмотрами объектов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тур.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tours").
		Columns(
			"reference",
			"user_id",
			"property_id",
			"tour_date",
			"start_time",
			"duration_minutes",
			"status",
			"property_title",
			"customer_name",
			"notes",
		).
		Values(
			tour.Reference,
			tour.UserID,
			tour.PropertyID,
			tour.TourDate,
			tour.StartTime,
			tour.DurationMinutes,
			tour.Status,
			tour.PropertyTitle,
			tour.CustomerName,
			tour.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tour.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time

	return tour, nil
}

// GetByID получает тур по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tour, err := r.scanTour(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tour: %v", ErrScanRow, err)
	}

	return tour, nil
}

// GetByUserID получает список туров пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("tour_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTours(rows)
}

// GetActiveByPropertyAndDate получает активные туры объекта на конкретную дату.
// Используется генератором слотов и проверкой доступности при записи на тур.
// Внутри транзакции добавляет FOR UPDATE - блокировка на время проверки слота.
func (r *Repository) GetActiveByPropertyAndDate(ctx context.Context, propertyID int64, date time.Time) ([]*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.Eq{"tour_date": domain.DayStart(date)}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPropertyAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPropertyAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTours(rows)
}

// UpdateStatus обновляет статус тура
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}

// Cancel отменяет тур с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTour сканирует одну строку в модель тура
func (r *Repository) scanTour(row rowScanner) (*domain.Tour, error) {
	var tour domain.Tour
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tour.ID,
		&tour.Reference,
		&tour.UserID,
		&tour.PropertyID,
		&tour.TourDate,
		&tour.StartTime,
		&tour.DurationMinutes,
		&tour.Status,
		&tour.PropertyTitle,
		&tour.CustomerName,
		&tour.Notes,
		&tour.CancellationReason,
		&tour.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time

	return &tour, nil
}

// scanTours сканирует результаты запроса в слайс туров
func (r *Repository) scanTours(rows *sql.Rows) ([]*domain.Tour, error) {
	tours := make([]*domain.Tour, 0)

	for rows.Next() {
		tour, err := r.scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTours - scan row: %v", ErrScanRow, err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTours - rows error: %v", ErrScanRow, err)
	}

	return tours, nil
}
