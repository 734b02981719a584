package tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	tourRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/tour"
	propertyClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/internal/service/tours/models"
)

// Service сервис для работы с турами
type Service struct {
	tourRepo       TourRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса туров
func NewService(
	tourRepo TourRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		tourRepo:       tourRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// GetByID получает тур по ID.
// Пользователь может видеть только свой тур или если он менеджер объекта
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.TourResponse, error) {
	s.logger.Info("GetByID: fetching tour id=%d for user=%d", id, userID)

	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("GetByID: tour id=%d not found", id)
			return nil, ErrTourNotFound
		}
		s.logger.Error("GetByID: repository error for tour id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if tour.UserID != userID {
		if err := s.checkManagerAccess(ctx, tour.PropertyID, userID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to tour id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetByID: successfully fetched tour id=%d", id)
	return models.FromDomainTour(tour), nil
}

// GetUserTours получает историю туров пользователя.
// Опционально фильтрует по статусу
func (s *Service) GetUserTours(ctx context.Context, req *models.GetUserToursRequest) (*models.TourListResponse, error) {
	s.logger.Info("GetUserTours: fetching tours for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainTourStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserTours: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	tours, err := s.tourRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserTours: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserTours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserTours: successfully fetched %d tours for user=%d", len(tours), req.UserID)
	return models.FromDomainTourList(tours), nil
}

// Cancel отменяет тур.
// Пользователь может отменить только свой тур (cancelled_by_user).
// Менеджер может отменить любой тур объекта (cancelled_by_property)
func (s *Service) Cancel(ctx context.Context, tourID int64, req *models.CancelTourRequest) error {
	s.logger.Info("Cancel: cancelling tour id=%d by user=%d", tourID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for tour id=%d", tourID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	// Получаем тур
	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Cancel: tour id=%d not found", tourID)
			return ErrTourNotFound
		}
		s.logger.Error("Cancel: repository error for tour id=%d: %v", tourID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить тур
	if !tour.CanBeCancelled() {
		s.logger.Warn("Cancel: tour id=%d cannot be cancelled, status=%s", tourID, tour.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	// Проверяем, является ли пользователь владельцем тура
	if tour.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Проверяем, является ли пользователь менеджером объекта
		if err := s.checkManagerAccess(ctx, tour.PropertyID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel tour id=%d", req.UserID, tourID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByProperty
	}

	// Отменяем тур
	if err := s.tourRepo.Cancel(ctx, tourID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Cancel: tour id=%d not found during cancellation", tourID)
			return ErrTourNotFound
		}
		s.logger.Error("Cancel: repository error for tour id=%d: %v", tourID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled tour id=%d with status=%s", tourID, cancelStatus)
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
