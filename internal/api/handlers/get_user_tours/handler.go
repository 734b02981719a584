package get_user_tours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/api/middleware"
	"github.com/m04kA/RPM-BookingService/internal/service/tours"
	"github.com/m04kA/RPM-BookingService/internal/service/tours/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный статус"
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

// Handle GET /api/v1/users/{userId}/tours
// Пользователь может смотреть только свою историю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/tours - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/tours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// История доступна только самому пользователю
	if authUserID != userID {
		h.logger.Warn("GET /users/{userId}/tours - Access denied: user_id=%d, auth_user_id=%d",
			userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetUserToursRequest{
		UserID: userID,
		Status: statusPtr,
	}

	// Получаем туры пользователя
	result, err := h.service.GetUserTours(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, tours.ErrInvalidInput) {
			h.logger.Warn("GET /users/{userId}/tours - Invalid status: user_id=%d, status=%s", userID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /users/{userId}/tours - Failed to get tours: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/tours - Tours retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Tours))
	handlers.RespondJSON(w, http.StatusOK, result.Tours)
}
