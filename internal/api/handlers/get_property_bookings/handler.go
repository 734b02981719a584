package get_property_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/api/middleware"
	"github.com/m04kA/RPM-BookingService/internal/service/bookings"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidParams     = "некорректные параметры запроса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgPropertyNotFound  = "объект не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/bookings
// Query params: status, startDate, endDate, includeInactive (опционально)
// Доступно только менеджерам объекта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/bookings - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /properties/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Формируем запрос к сервису из query параметров
	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		propertyID,
		userID,
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования объекта
	result, err := h.service.GetPropertyBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/bookings - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /properties/{id}/bookings - Access denied: property_id=%d, user_id=%d",
				propertyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/bookings - Invalid filter: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /properties/{id}/bookings - Failed to get bookings: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/bookings - Bookings retrieved successfully: property_id=%d, count=%d",
		propertyID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
