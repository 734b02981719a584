package schedule_tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	configRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/tourconfig"
	propertyClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	userClient "github.com/m04kA/RPM-BookingService/internal/integrations/userservice"
)

// UseCase use case для записи на тур
type UseCase struct {
	tourRepo       TourRepository
	configRepo     TourConfigRepository
	propertyClient PropertyServiceClient
	userClient     UserServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	configRepo TourConfigRepository,
	propertyClient PropertyServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:       tourRepo,
		configRepo:     configRepo,
		propertyClient: propertyClient,
		userClient:     userClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case записи на тур.
// Доступность слота перепроверяется в сериализуемой транзакции:
// сетка слотов, показанная клиенту, могла устареть к моменту отправки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleTour: user=%d, property=%d, date=%s, time=%s",
		req.UserID, req.PropertyID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleTour: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем профиль пользователя
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("ScheduleTour: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ScheduleTour: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Получаем объект
	property, err := uc.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("ScheduleTour: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("ScheduleTour: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 5. Проверяем, что объект предлагает туры
	availability := property.TourAvailability
	if availability == nil {
		uc.logger.Warn("ScheduleTour: property id=%d does not offer tours", req.PropertyID)
		return nil, ErrToursNotOffered
	}

	// 6. Проверяем, что туры доступны в выбранную дату
	if err := validateDateAvailable(availability, req.Date); err != nil {
		uc.logger.Warn("ScheduleTour: date %s not available for property id=%d",
			req.Date.Format(domain.DateFormat), req.PropertyID)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Tour

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем конфигурацию слотов объекта
		config, err := uc.configRepo.GetByProperty(txCtx, req.PropertyID)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("ScheduleTour: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Если конфигурация не найдена, используем дефолтные значения
		if config == nil {
			config = &domain.TourSlotsConfig{
				PropertyID:         req.PropertyID,
				MaxConcurrentTours: domain.DefaultMaxConcurrentTours,
				AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
				MinNoticeMinutes:   domain.DefaultMinNoticeMinutes,
			}
			uc.logger.Info("ScheduleTour: using default config for property=%d", req.PropertyID)
		} else {
			uc.logger.Info("ScheduleTour: using config id=%d", config.ID)
		}

		// Длительность слота: конфигурация объекта имеет приоритет над недельным шаблоном
		slotDuration := resolveSlotDuration(config, availability)

		// 7.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
			uc.logger.Warn("ScheduleTour: date validation failed: %v", err)
			return err
		}

		// 7.3. Время начала должно совпадать с сеткой слотов
		if err := validateSlotAlignment(availability, req.StartTime, slotDuration); err != nil {
			uc.logger.Warn("ScheduleTour: slot alignment validation failed: %v", err)
			return err
		}

		// 7.4. Валидация времени записи (minNoticeMinutes)
		if err := validateTourTime(req.Date, req.StartTime, now, config.MinNoticeMinutes); err != nil {
			uc.logger.Warn("ScheduleTour: tour time validation failed: %v", err)
			return err
		}

		// 7.5. Получаем все активные туры на эту дату с блокировкой (FOR UPDATE)
		tours, err := uc.tourRepo.GetActiveByPropertyAndDate(txCtx, req.PropertyID, req.Date)
		if err != nil {
			uc.logger.Error("ScheduleTour: failed to get tours: %v", err)
			return fmt.Errorf("%w: failed to get tours: %v", ErrInternal, err)
		}

		// 7.6. Проверяем доступность слота
		overlappingCount, err := countOverlappingTours(req.StartTime, slotDuration, tours)
		if err != nil {
			uc.logger.Error("ScheduleTour: failed to count overlapping tours: %v", err)
			return fmt.Errorf("%w: failed to count overlapping tours: %v", ErrInternal, err)
		}

		// Если MaxConcurrentTours = 3, то допустимо overlappingCount = 0, 1, 2.
		// При overlappingCount >= 3 слот недоступен
		if overlappingCount >= config.MaxConcurrentTours {
			uc.logger.Warn("ScheduleTour: slot not available, %d/%d spots taken",
				overlappingCount, config.MaxConcurrentTours)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("ScheduleTour: slot available, %d/%d spots taken",
			overlappingCount, config.MaxConcurrentTours)

		// 7.7. Создаем тур с денормализацией данных
		tour := &domain.Tour{
			Reference:       uuid.NewString(),
			UserID:          req.UserID,
			PropertyID:      req.PropertyID,
			TourDate:        domain.DayStart(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: slotDuration,
			Status:          domain.StatusPending,
			// Денормализация данных объекта и клиента
			PropertyTitle: property.Title,
			CustomerName:  user.Name,
			Notes:         req.Notes,
		}

		// 7.8. Сохраняем тур
		created, err := uc.tourRepo.Create(txCtx, tour)
		if err != nil {
			uc.logger.Error("ScheduleTour: failed to create tour: %v", err)
			return fmt.Errorf("%w: failed to create tour: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScheduleTour: successfully created tour id=%d reference=%s", result.ID, result.Reference)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		UserID:          result.UserID,
		PropertyID:      result.PropertyID,
		TourDate:        result.TourDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PropertyTitle:   result.PropertyTitle,
		CustomerName:    result.CustomerName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
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
