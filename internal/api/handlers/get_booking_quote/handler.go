package get_booking_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	getBookingQuote "github.com/m04kA/RPM-BookingService/internal/usecase/get_booking_quote"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidParams     = "некорректные параметры запроса"
	msgPropertyNotFound  = "объект не найден"
)

type Handler struct {
	useCase GetBookingQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/quote
// Query params: checkIn, checkOut (short_term); months, years, paymentOption (long_term)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/quote - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Собираем запрос из query параметров
	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		propertyID,
		query.Get("checkIn"),
		query.Get("checkOut"),
		query.Get("months"),
		query.Get("years"),
		query.Get("paymentOption"),
	)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/quote - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getBookingQuote.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/quote - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getBookingQuote.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/quote - Invalid input: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /properties/{id}/quote - Failed to get quote: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/quote - Quote calculated successfully: property_id=%d, total=%d",
		propertyID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
