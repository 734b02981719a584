package get_booking_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	propertyClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/pkg/ptr"
)

// UseCase use case расчёта стоимости бронирования
type UseCase struct {
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(propertyClient PropertyServiceClient, logger Logger) *UseCase {
	return &UseCase{
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// Execute выполняет расчёт стоимости.
// Чистая функция от property и параметров запроса: повторный вызов
// с теми же входными данными даёт тот же результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingQuote: property=%d, months=%d, years=%d",
		req.PropertyID, req.DurationMonths, req.DurationYears)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	property, err := uc.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetBookingQuote: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetBookingQuote: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	term := domain.RentalTerm(property.RentalTerm)

	// 3. Проверяем согласованность полей запроса с типом аренды
	if err := validateTermFields(term, req); err != nil {
		uc.logger.Warn("GetBookingQuote: term validation failed: %v", err)
		return nil, err
	}

	// 4. Считаем стоимость
	totalPrice := calculateTotalPrice(term, property.Price, req.CheckIn, req.CheckOut,
		req.DurationMonths, req.DurationYears)
	depositAmount := calculateDepositAmount(term, property.Price)

	// Для долгосрочной аренды без явной опции применяем deposit_only
	var appliedOption *domain.PaymentOption
	if term == domain.TermLong {
		option := domain.PaymentDepositOnly
		if req.PaymentOption != nil {
			option = *req.PaymentOption
		}
		appliedOption = ptr.Ptr(option)
	}

	dueToday := int64(0)
	if appliedOption != nil {
		dueToday = calculateDueToday(term, property.Price, *appliedOption, totalPrice)
	} else {
		dueToday = calculateDueToday(term, property.Price, "", totalPrice)
	}

	resp := &Response{
		PropertyID:    property.ID,
		RentalTerm:    term,
		UnitPrice:     property.Price,
		Currency:      property.Currency,
		Nights:        domain.NightsBetween(req.CheckIn, req.CheckOut),
		TotalMonths:   req.DurationMonths + req.DurationYears*12,
		PaymentOption: appliedOption,
		TotalPrice:    totalPrice,
		DepositAmount: depositAmount,
		DueToday:      dueToday,
		Complete:      totalPrice > 0,
	}

	uc.logger.Info("GetBookingQuote: property=%d, term=%s, total=%d, dueToday=%d",
		property.ID, term, totalPrice, resp.DueToday)

	return resp, nil
}
