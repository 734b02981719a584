package tourconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RPM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией слотов туров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProperty получает конфигурацию слотов для объекта
func (r *Repository) GetByProperty(ctx context.Context, propertyID int64) (*domain.TourSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"property_id",
		"slot_duration_minutes",
		"max_concurrent_tours",
		"advance_booking_days",
		"min_notice_minutes",
		"created_at",
		"updated_at",
	).
		From("tour_slots_config").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProperty - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.TourSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.PropertyID,
		&config.SlotDurationMinutes,
		&config.MaxConcurrentTours,
		&config.AdvanceBookingDays,
		&config.MinNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProperty - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или обновляет конфигурацию слотов объекта.
// Одна строка на объект (уникальный индекс по property_id).
func (r *Repository) Upsert(ctx context.Context, config *domain.TourSlotsConfig) (*domain.TourSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tour_slots_config").
		Columns(
			"property_id",
			"slot_duration_minutes",
			"max_concurrent_tours",
			"advance_booking_days",
			"min_notice_minutes",
		).
		Values(
			config.PropertyID,
			config.SlotDurationMinutes,
			config.MaxConcurrentTours,
			config.AdvanceBookingDays,
			config.MinNoticeMinutes,
		).
		Suffix(`ON CONFLICT (property_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			max_concurrent_tours = EXCLUDED.max_concurrent_tours,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_notice_minutes = EXCLUDED.min_notice_minutes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию объекта (возврат к значениям по умолчанию)
func (r *Repository) Delete(ctx context.Context, propertyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tour_slots_config").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
