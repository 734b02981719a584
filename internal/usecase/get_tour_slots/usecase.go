package get_tour_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	configRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/tourconfig"
	propertyClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
)

// UseCase use case для получения доступных слотов для туров
type UseCase struct {
	tourRepo       TourRepository
	configRepo     TourConfigRepository
	propertyClient PropertyServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	configRepo TourConfigRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:       tourRepo,
		configRepo:     configRepo,
		propertyClient: propertyClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTourSlots: user=%d, property=%d, date=%s",
		req.UserID, req.PropertyID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTourSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем объект
	property, err := uc.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetTourSlots: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetTourSlots: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Проверяем, что объект предлагает туры
	if property.TourAvailability == nil {
		uc.logger.Warn("GetTourSlots: property id=%d does not offer tours", req.PropertyID)
		return nil, ErrToursNotOffered
	}

	// 5. Получаем конфигурацию слотов объекта
	config, err := uc.configRepo.GetByProperty(ctx, req.PropertyID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetTourSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = &domain.TourSlotsConfig{
			PropertyID:         req.PropertyID,
			MaxConcurrentTours: domain.DefaultMaxConcurrentTours,
			AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
			MinNoticeMinutes:   domain.DefaultMinNoticeMinutes,
		}
		uc.logger.Info("GetTourSlots: using default config for property=%d", req.PropertyID)
	} else {
		uc.logger.Info("GetTourSlots: using config id=%d", config.ID)
	}

	// Длительность слота: конфигурация объекта имеет приоритет над недельным шаблоном
	slotDuration := resolveSlotDuration(config, property.TourAvailability)

	// 6. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetTourSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(
		property.TourAvailability,
		slotDuration,
		req.Date,
		now,
		config.MinNoticeMinutes,
	)
	if err != nil {
		uc.logger.Error("GetTourSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 8. Получаем все активные туры по объекту на эту дату
	tours, err := uc.tourRepo.GetActiveByPropertyAndDate(ctx, req.PropertyID, req.Date)
	if err != nil {
		uc.logger.Error("GetTourSlots: failed to get tours: %v", err)
		return nil, fmt.Errorf("%w: failed to get tours: %v", ErrInternal, err)
	}

	// 9. Вычисляем доступность для каждого слота
	slots := calculateAvailableSpots(
		timeSlots,
		slotDuration,
		tours,
		config.MaxConcurrentTours,
	)

	uc.logger.Info("GetTourSlots: generated %d slots for property=%d, date=%s",
		len(slots), req.PropertyID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		PropertyID: req.PropertyID,
		Slots:      slots,
	}, nil
}

// resolveSlotDuration возвращает действующую длительность слота:
// значение из конфигурации, иначе из недельного шаблона объекта, иначе дефолт
func resolveSlotDuration(config *domain.TourSlotsConfig, availability *propertyClient.TourAvailability) int {
	if config.SlotDurationMinutes > 0 {
		return config.SlotDurationMinutes
	}
	if availability.TourDurationMinutes > 0 {
		return availability.TourDurationMinutes
	}
	return domain.DefaultTourDurationMinutes
}
