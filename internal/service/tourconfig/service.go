package tourconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	configRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/tourconfig"
	propertyClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/internal/service/tourconfig/models"
)

// Service сервис для работы с конфигурацией слотов туров
type Service struct {
	configRepo     TourConfigRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo TourConfigRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:     configRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// GetEffectiveConfig получает действующую конфигурацию слотов объекта.
// Публичный метод - используется клиентами для отображения сетки слотов.
// Если конфигурация не сохранена явно, возвращаются дефолтные значения,
// длительность слота берётся из недельного шаблона объекта
func (s *Service) GetEffectiveConfig(ctx context.Context, propertyID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetEffectiveConfig: fetching config for property=%d", propertyID)

	// Получаем объект - заодно проверяем его существование
	property, err := s.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("GetEffectiveConfig: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetEffectiveConfig: failed to get property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	config, err := s.configRepo.GetByProperty(ctx, propertyID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("GetEffectiveConfig: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetEffectiveConfig - repository error: %v", ErrInternal, err)
	}

	// Конфигурация не сохранена - собираем действующую из дефолтов
	if config == nil {
		resp := &models.ConfigResponse{
			PropertyID:          propertyID,
			SlotDurationMinutes: domain.DefaultTourDurationMinutes,
			MaxConcurrentTours:  domain.DefaultMaxConcurrentTours,
			AdvanceBookingDays:  domain.DefaultAdvanceBookingDays,
			MinNoticeMinutes:    domain.DefaultMinNoticeMinutes,
			IsDefault:           true,
		}
		if property.TourAvailability != nil && property.TourAvailability.TourDurationMinutes > 0 {
			resp.SlotDurationMinutes = property.TourAvailability.TourDurationMinutes
		}
		s.logger.Info("GetEffectiveConfig: using default config for property=%d", propertyID)
		return resp, nil
	}

	resp := models.FromDomainConfig(config)

	// Нулевая длительность в конфигурации означает наследование из шаблона объекта
	if resp.SlotDurationMinutes == 0 {
		resp.SlotDurationMinutes = domain.DefaultTourDurationMinutes
		if property.TourAvailability != nil && property.TourAvailability.TourDurationMinutes > 0 {
			resp.SlotDurationMinutes = property.TourAvailability.TourDurationMinutes
		}
	}

	s.logger.Info("GetEffectiveConfig: successfully fetched config for property=%d", propertyID)
	return resp, nil
}

// Update обновляет конфигурацию слотов объекта.
// Доступно только менеджерам объекта.
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, propertyID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for property=%d by user=%d", propertyID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateConfigData(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект для проверки прав доступа
	property, err := s.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: failed to get property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только менеджер объекта)
	if !s.isManager(property, req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of property=%d", req.UserID, propertyID)
		return nil, ErrAccessDenied
	}

	// 4. Получаем существующую конфигурацию (если есть)
	config, err := s.configRepo.GetByProperty(ctx, propertyID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("Update: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Начинаем с дефолтов, если конфигурации ещё нет
	if config == nil {
		config = &domain.TourSlotsConfig{
			PropertyID:         propertyID,
			MaxConcurrentTours: domain.DefaultMaxConcurrentTours,
			AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
			MinNoticeMinutes:   domain.DefaultMinNoticeMinutes,
		}
	}

	// 5. Применяем только переданные поля
	if req.SlotDurationMinutes != nil {
		config.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.MaxConcurrentTours != nil {
		config.MaxConcurrentTours = *req.MaxConcurrentTours
	}
	if req.AdvanceBookingDays != nil {
		config.AdvanceBookingDays = *req.AdvanceBookingDays
	}
	if req.MinNoticeMinutes != nil {
		config.MinNoticeMinutes = *req.MinNoticeMinutes
	}

	// 6. Сохраняем конфигурацию (insert или update)
	saved, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Update: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated config for property=%d", propertyID)
	return models.FromDomainConfig(saved), nil
}

// Delete удаляет конфигурацию слотов объекта (возврат к дефолтам).
// Доступно только менеджерам объекта
func (s *Service) Delete(ctx context.Context, propertyID int64, req *models.DeleteConfigRequest) error {
	s.logger.Info("Delete: deleting config for property=%d by user=%d", propertyID, req.UserID)

	// Получаем объект для проверки прав доступа
	property, err := s.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("Delete: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("Delete: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер объекта)
	if !s.isManager(property, req.UserID) {
		s.logger.Warn("Delete: user=%d is not a manager of property=%d", req.UserID, propertyID)
		return ErrAccessDenied
	}

	if err := s.configRepo.Delete(ctx, propertyID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: config for property=%d not found", propertyID)
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error for property=%d: %v", propertyID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted config for property=%d", propertyID)
	return nil
}

// Вспомогательные методы

// validateConfigData проверяет границы значений конфигурации
func (s *Service) validateConfigData(req *models.UpdateConfigRequest) error {
	if req.SlotDurationMinutes != nil {
		v := *req.SlotDurationMinutes
		if v < domain.MinTourDurationMinutes || v > domain.MaxTourDurationMinutes {
			return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinTourDurationMinutes, domain.MaxTourDurationMinutes)
		}
	}

	if req.MaxConcurrentTours != nil {
		v := *req.MaxConcurrentTours
		if v < 1 || v > domain.MaxConcurrentTours {
			return fmt.Errorf("%w: maxConcurrentTours must be between 1 and %d",
				ErrInvalidInput, domain.MaxConcurrentTours)
		}
	}

	if req.AdvanceBookingDays != nil {
		v := *req.AdvanceBookingDays
		if v < 0 || v > domain.MaxAdvanceBookingDays {
			return fmt.Errorf("%w: advanceBookingDays must be between 0 and %d",
				ErrInvalidInput, domain.MaxAdvanceBookingDays)
		}
	}

	if req.MinNoticeMinutes != nil {
		v := *req.MinNoticeMinutes
		if v < 0 || v > domain.MaxNoticeMinutes {
			return fmt.Errorf("%w: minNoticeMinutes must be between 0 and %d",
				ErrInvalidInput, domain.MaxNoticeMinutes)
		}
	}

	return nil
}

// isManager проверяет, что пользователь входит в список менеджеров объекта
func (s *Service) isManager(property *propertyClient.Property, userID int64) bool {
	for _, managerID := range property.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}
