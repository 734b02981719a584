package cancel_tour

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/api/middleware"
	"github.com/m04kA/RPM-BookingService/internal/service/tours"
)

const (
	msgInvalidTourID      = "некорректный ID тура"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "тур не найден"
	msgForbidden          = "доступ запрещен"
	msgCannotCancel       = "тур не может быть отменён"
)

type Handler struct {
	service TourService
	logger  Logger
}

func NewHandler(service TourService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tours/{tourId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tourId из URL
	vars := mux.Vars(r)
	tourIDStr := vars["tourId"]

	tourID, err := strconv.ParseInt(tourIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tours/{id}/cancel - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tours/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CancelTourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tours/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Отменяем тур
	err = h.service.Cancel(r.Context(), tourID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, tours.ErrTourNotFound):
			h.logger.Warn("PATCH /tours/{id}/cancel - Tour not found: tour_id=%d", tourID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tours.ErrAccessDenied):
			h.logger.Warn("PATCH /tours/{id}/cancel - Access denied: tour_id=%d, user_id=%d", tourID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tours.ErrCannotCancel):
			h.logger.Warn("PATCH /tours/{id}/cancel - Cannot cancel: tour_id=%d", tourID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, tours.ErrInvalidInput):
			h.logger.Warn("PATCH /tours/{id}/cancel - Invalid input: tour_id=%d, error=%v", tourID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /tours/{id}/cancel - Failed to cancel tour: tour_id=%d, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tours/{id}/cancel - Tour cancelled successfully: tour_id=%d, user_id=%d",
		tourID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
