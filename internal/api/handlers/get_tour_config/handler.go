package get_tour_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/service/tourconfig"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgPropertyNotFound  = "объект не найден"
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

// Handle GET /api/v1/properties/{propertyId}/tour-config
// Публичный endpoint - без авторизации.
// Если конфигурация не сохранена явно, возвращаются действующие дефолты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/tour-config - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Получаем действующую конфигурацию
	result, err := h.service.GetEffectiveConfig(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, tourconfig.ErrPropertyNotFound) {
			h.logger.Warn("GET /properties/{id}/tour-config - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)
			return
		}

		h.logger.Error("GET /properties/{id}/tour-config - Failed to get config: property_id=%d, error=%v",
			propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties/{id}/tour-config - Config retrieved successfully: property_id=%d, default=%t",
		propertyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
