package schedule_tour

import (
	"context"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/internal/integrations/userservice"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	// Create создает новый тур
	Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)

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

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
