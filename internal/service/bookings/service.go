package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/booking"
	propertyClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID.
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является менеджером объекта
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetPropertyBookings получает бронирования объекта с гибкой фильтрацией.
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований.
// Доступно только менеджерам объекта
//
// Примеры использования:
// - Все активные бронирования: GetPropertyBookings(ctx, &GetPropertyBookingsRequest{PropertyID: 123, UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetPropertyBookings(ctx context.Context, req *models.GetPropertyBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetPropertyBookings: fetching bookings for property=%d, user=%d", req.PropertyID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPropertyBookings: invalid filter for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByPropertyWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPropertyBookings: repository error for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: GetPropertyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPropertyBookings: successfully fetched %d bookings for property=%d", len(bookings), req.PropertyID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Пользователь может отменить только своё бронирование (cancelled_by_user).
// Менеджер может отменить любое бронирование объекта (cancelled_by_property).
// Отменённое бронирование повторно отменить нельзя
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	// Проверяем, является ли пользователь владельцем бронирования
	if booking.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Проверяем, является ли пользователь менеджером объекта
		if err := s.checkManagerAccess(ctx, booking.PropertyID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByProperty
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// Confirm подтверждает бронирование (pending -> confirmed).
// Доступно только менеджерам объекта
func (s *Service) Confirm(ctx context.Context, bookingID int64, req *models.ConfirmBookingRequest) error {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер объекта)
	if err := s.checkManagerAccess(ctx, booking.PropertyID, req.UserID); err != nil {
		return err
	}

	// Подтвердить можно только ожидающее бронирование
	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
		return ErrCannotConfirm
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию.
// Пользователь может видеть своё бронирование или если он менеджер объекта
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if booking.UserID == userID {
		return nil
	}

	// Проверяем, является ли пользователь менеджером объекта
	if err := s.checkManagerAccess(ctx, booking.PropertyID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером объекта
func (s *Service) checkManagerAccess(ctx context.Context, propertyID int64, userID int64) error {
	// Получаем объект через PropertyService
	property, err := s.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("checkManagerAccess: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get property: %v", ErrInternal, err)
	}

	// Проверяем, что userID в списке менеджеров
	for _, managerID := range property.ManagerIDs {
		if managerID == userID {
			s.logger.Info("checkManagerAccess: user=%d is manager of property=%d", userID, propertyID)
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of property=%d", userID, propertyID)
	return ErrAccessDenied
}
