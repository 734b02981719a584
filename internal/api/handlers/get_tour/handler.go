package get_tour

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
	msgInvalidTourID = "некорректный ID тура"
	msgNotFound      = "тур не найден"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tourId из URL
	vars := mux.Vars(r)
	tourIDStr := vars["tourId"]

	tourID, err := strconv.ParseInt(tourIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /tours/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем тур (сервис сам проверит права доступа)
	tour, err := h.service.GetByID(r.Context(), tourID, userID)
	if err != nil {
		switch {
		case errors.Is(err, tours.ErrTourNotFound):
			h.logger.Warn("GET /tours/{id} - Tour not found: tour_id=%d", tourID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tours.ErrAccessDenied):
			h.logger.Warn("GET /tours/{id} - Access denied: tour_id=%d, user_id=%d", tourID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /tours/{id} - Failed to get tour: tour_id=%d, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours/{id} - Tour retrieved successfully: tour_id=%d, user_id=%d", tourID, userID)
	handlers.RespondJSON(w, http.StatusOK, tour)
}
