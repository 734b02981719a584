package update_tour_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/api/middleware"
	"github.com/m04kA/RPM-BookingService/internal/service/tourconfig"
	"github.com/m04kA/RPM-BookingService/internal/service/tourconfig/models"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPropertyNotFound   = "объект не найден"
	msgConfigNotFound     = "конфигурация не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service TourConfigService
	logger  Logger
}

func NewHandler(service TourConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/properties/{propertyId}/tour-config
// Доступно только менеджерам объекта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /properties/{id}/tour-config - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /properties/{id}/tour-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateTourConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /properties/{id}/tour-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем конфигурацию
	result, err := h.service.Update(r.Context(), propertyID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, tourconfig.ErrPropertyNotFound):
			h.logger.Warn("PUT /properties/{id}/tour-config - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, tourconfig.ErrAccessDenied):
			h.logger.Warn("PUT /properties/{id}/tour-config - Access denied: property_id=%d, user_id=%d",
				propertyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tourconfig.ErrInvalidInput):
			h.logger.Warn("PUT /properties/{id}/tour-config - Invalid input: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /properties/{id}/tour-config - Failed to update config: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /properties/{id}/tour-config - Config updated successfully: property_id=%d, user_id=%d",
		propertyID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/properties/{propertyId}/tour-config
// Сбрасывает конфигурацию к дефолтным значениям.
// Доступно только менеджерам объекта
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /properties/{id}/tour-config - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /properties/{id}/tour-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем конфигурацию
	err = h.service.Delete(r.Context(), propertyID, &models.DeleteConfigRequest{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, tourconfig.ErrPropertyNotFound):
			h.logger.Warn("DELETE /properties/{id}/tour-config - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, tourconfig.ErrConfigNotFound):
			h.logger.Warn("DELETE /properties/{id}/tour-config - Config not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, tourconfig.ErrAccessDenied):
			h.logger.Warn("DELETE /properties/{id}/tour-config - Access denied: property_id=%d, user_id=%d",
				propertyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /properties/{id}/tour-config - Failed to delete config: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /properties/{id}/tour-config - Config deleted successfully: property_id=%d, user_id=%d",
		propertyID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
