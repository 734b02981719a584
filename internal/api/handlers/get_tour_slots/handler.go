package get_tour_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/domain"
	getTourSlots "github.com/m04kA/RPM-BookingService/internal/usecase/get_tour_slots"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPropertyNotFound  = "объект не найден"
	msgToursNotOffered   = "объект не предлагает туры"
	msgInvalidTourDate   = "некорректная дата тура"
	msgDateTooFar        = "дата тура слишком далеко в будущем"
)

type Handler struct {
	useCase GetTourSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTourSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/tour-slots?date=YYYY-MM-DD
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/tour-slots - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Парсим дату из query параметров
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/tour-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getTourSlots.Request{
		PropertyID: propertyID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTourSlots.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/tour-slots - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getTourSlots.ErrToursNotOffered):
			h.logger.Warn("GET /properties/{id}/tour-slots - Tours not offered: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgToursNotOffered)

		case errors.Is(err, getTourSlots.ErrInvalidDate):
			h.logger.Warn("GET /properties/{id}/tour-slots - Invalid tour date: property_id=%d", propertyID)
			handlers.RespondBadRequest(w, msgInvalidTourDate)

		case errors.Is(err, getTourSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /properties/{id}/tour-slots - Date too far in future: property_id=%d", propertyID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getTourSlots.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/tour-slots - Invalid input: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /properties/{id}/tour-slots - Failed to get slots: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/tour-slots - Slots retrieved successfully: property_id=%d, date=%s, count=%d",
		propertyID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
