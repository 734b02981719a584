package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	propertyClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	userClient "github.com/m04kA/RPM-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	propertyClient PropertyServiceClient
	userClient     UserServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyClient PropertyServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		propertyClient: propertyClient,
		userClient:     userClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности дат и запись выполняются в сериализуемой транзакции:
// клиентская проверка доступности могла устареть к моменту отправки,
// поэтому непосредственно перед записью даты перепроверяются по актуальному
// состоянию БД, и при конфликте бронирование отклоняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, property=%d", req.UserID, req.PropertyID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем профиль пользователя (контактные данные для бронирования)
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Проверяем обязательные контактные данные
	if err := validateCustomerProfile(user); err != nil {
		uc.logger.Warn("CreateBooking: customer profile incomplete for user id=%d: %v", req.UserID, err)
		return nil, err
	}

	// 5. Получаем объект
	property, err := uc.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	term := domain.RentalTerm(property.RentalTerm)

	// 6. Проверяем обязательные поля для типа аренды
	if err := validateTermFields(term, req); err != nil {
		uc.logger.Warn("CreateBooking: term validation failed: %v", err)
		return nil, err
	}

	// 7. Для краткосрочной аренды дата заезда не может быть в прошлом
	if term == domain.TermShort {
		if err := validateCheckInNotInPast(*req.CheckIn, now); err != nil {
			uc.logger.Warn("CreateBooking: check-in date in the past for property id=%d", req.PropertyID)
			return nil, err
		}
	}

	// 8. Считаем стоимость; нулевая стоимость означает незавершённый выбор
	totalPrice := calculateTotalPrice(term, property.Price, req.CheckIn, req.CheckOut,
		req.DurationMonths, req.DurationYears)
	if totalPrice <= 0 {
		uc.logger.Warn("CreateBooking: incomplete selection for property id=%d", req.PropertyID)
		return nil, ErrIncompleteSelection
	}

	depositAmount := calculateDepositAmount(term, property.Price)

	dueToday := int64(0)
	if req.PaymentOption != nil {
		dueToday = calculateDueToday(term, property.Price, *req.PaymentOption, totalPrice)
	} else {
		dueToday = calculateDueToday(term, property.Price, "", totalPrice)
	}

	blockedDates := parseBlockedDates(property.BlockedDates)

	// Переменная для хранения результата
	var result *domain.Booking

	// 9. Проверка доступности и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		switch term {
		case domain.TermShort:
			// 9.1. Ни одна ночь интервала не должна быть заблокирована владельцем
			if blocked := findBlockedNight(blockedDates, *req.CheckIn, *req.CheckOut); blocked != nil {
				uc.logger.Warn("CreateBooking: date %s is blocked for property id=%d",
					blocked.Format(domain.DateFormat), req.PropertyID)
				return fmt.Errorf("%w: %s", ErrDatesBlocked, blocked.Format(domain.DateFormat))
			}

			// 9.2. Перепроверяем пересечения с активными бронированиями (FOR UPDATE)
			overlapping, err := uc.bookingRepo.GetActiveOverlapping(txCtx, req.PropertyID, *req.CheckIn, *req.CheckOut)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
				return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
			}
			if len(overlapping) > 0 {
				uc.logger.Warn("CreateBooking: %d overlapping bookings for property id=%d",
					len(overlapping), req.PropertyID)
				return ErrDatesNotAvailable
			}
		case domain.TermLong:
			// 9.3. Объект не должен быть уже сдан в долгосрочную аренду
			leases, err := uc.bookingRepo.GetActiveLeases(txCtx, req.PropertyID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get active leases: %v", err)
				return fmt.Errorf("%w: failed to get active leases: %v", ErrInternal, err)
			}
			if len(leases) > 0 {
				uc.logger.Warn("CreateBooking: property id=%d already has an active lease", req.PropertyID)
				return ErrPropertyNotAvailable
			}
		}

		// 9.4. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			Reference:      uuid.NewString(),
			UserID:         req.UserID,
			PropertyID:     req.PropertyID,
			RentalTerm:     term,
			CheckIn:        req.CheckIn,
			CheckOut:       req.CheckOut,
			DurationMonths: req.DurationMonths,
			DurationYears:  req.DurationYears,
			PaymentOption:  req.PaymentOption,
			TotalPrice:     totalPrice,
			DepositAmount:  depositAmount,
			DueToday:       dueToday,
			Currency:       property.Currency,
			Status:         domain.StatusPending,
			// Денормализация данных объекта и клиента
			PropertyTitle: property.Title,
			CustomerName:  user.Name,
			CustomerEmail: user.Email,
			CustomerPhone: user.Phone,
			Notes:         req.Notes,
			// Платёжный блок прикрепляется дословно
			PaymentInstructions: domain.PaymentInstructions,
		}

		// 9.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s total=%d dueToday=%d",
		result.ID, result.Reference, result.TotalPrice, result.DueToday)

	// Конвертируем в response
	return &Response{
		ID:                  result.ID,
		Reference:           result.Reference,
		UserID:              result.UserID,
		PropertyID:          result.PropertyID,
		RentalTerm:          result.RentalTerm,
		CheckIn:             result.CheckIn,
		CheckOut:            result.CheckOut,
		DurationMonths:      result.DurationMonths,
		DurationYears:       result.DurationYears,
		PaymentOption:       result.PaymentOption,
		TotalPrice:          result.TotalPrice,
		DepositAmount:       result.DepositAmount,
		DueToday:            result.DueToday,
		Currency:            result.Currency,
		Status:              string(result.Status),
		PropertyTitle:       result.PropertyTitle,
		CustomerName:        result.CustomerName,
		CustomerEmail:       result.CustomerEmail,
		CustomerPhone:       result.CustomerPhone,
		Notes:               result.Notes,
		PaymentInstructions: result.PaymentInstructions,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}
