package get_tour_slots

import (
	"context"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	// GetActiveByPropertyAndDate получает все активные туры по объекту на конкретную дату
	GetActiveByPropertyAndDate(ctx context.Context, propertyID int64, date time.Time) ([]*domain.Tour, error)
}

// TourConfigRepository интерфейс репозитория конфигурации слотов туров
type TourConfigRepository interface {
	// GetByProperty получает конфигурацию слотов для объекта
	GetByProperty(ctx context.Context, propertyID int64) (*domain.TourSlotsConfig, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
