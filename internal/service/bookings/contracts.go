package bookings

import (
	"context"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
