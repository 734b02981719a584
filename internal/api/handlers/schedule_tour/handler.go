package schedule_tour

import (
	"errors"
	"net/http"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/api/middleware"
	scheduleTour "github.com/m04kA/RPM-BookingService/internal/usecase/schedule_tour"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPropertyNotFound   = "объект не найден"
	msgUserNotFound       = "пользователь не найден"
	msgToursNotOffered    = "объект не предлагает туры"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidTourDate    = "некорректная дата тура"
	msgDateTooFar         = "дата тура слишком далеко в будущем"
	msgDateNotAvailable   = "туры недоступны в выбранную дату"
	msgInvalidTimeSlot    = "время начала не совпадает с сеткой слотов"
	msgTooLateToSchedule  = "слишком поздно для записи на этот слот"
)

type Handler struct {
	useCase ScheduleTourUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleTourUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ScheduleTourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /tours - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, scheduleTour.ErrSlotNotAvailable):
			h.logger.Warn("POST /tours - Slot not available: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, scheduleTour.ErrPropertyNotFound):
			h.logger.Warn("POST /tours - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, scheduleTour.ErrUserNotFound):
			h.logger.Warn("POST /tours - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, scheduleTour.ErrToursNotOffered):
			h.logger.Warn("POST /tours - Tours not offered: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgToursNotOffered)

		case errors.Is(err, scheduleTour.ErrInvalidDate):
			h.logger.Warn("POST /tours - Invalid tour date: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidTourDate)

		case errors.Is(err, scheduleTour.ErrDateTooFarInFuture):
			h.logger.Warn("POST /tours - Date too far in future: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, scheduleTour.ErrDateNotAvailable):
			h.logger.Warn("POST /tours - Date not available: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgDateNotAvailable)

		case errors.Is(err, scheduleTour.ErrInvalidTimeSlot):
			h.logger.Warn("POST /tours - Invalid time slot: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, scheduleTour.ErrTooLateToSchedule):
			h.logger.Warn("POST /tours - Too late to schedule: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgTooLateToSchedule)

		case errors.Is(err, scheduleTour.ErrInvalidInput):
			h.logger.Warn("POST /tours - Invalid input: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /tours - Failed to schedule tour: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /tours - Tour scheduled successfully: tour_id=%d, user_id=%d, property_id=%d",
		result.ID, userID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
