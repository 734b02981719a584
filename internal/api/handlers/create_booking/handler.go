package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RPM-BookingService/internal/api/handlers"
	"github.com/m04kA/RPM-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/RPM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgPropertyNotFound     = "объект не найден"
	msgUserNotFound         = "пользователь не найден"
	msgIncompleteSelection  = "выбор дат или длительности аренды не завершён"
	msgInvalidBookingDate   = "некорректная дата заезда"
	msgDatesBlocked         = "выбранные даты закрыты для бронирования"
	msgDatesNotAvailable    = "выбранные даты уже заняты"
	msgPropertyNotAvailable = "объект уже сдан в долгосрочную аренду"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrDatesNotAvailable):
			h.logger.Warn("POST /bookings - Dates not available: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondConflict(w, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrPropertyNotAvailable):
			h.logger.Warn("POST /bookings - Property not available: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondConflict(w, msgPropertyNotAvailable)

		case errors.Is(err, createBooking.ErrDatesBlocked):
			h.logger.Warn("POST /bookings - Dates blocked: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondConflict(w, msgDatesBlocked)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrIncompleteSelection):
			h.logger.Warn("POST /bookings - Incomplete selection: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, property_id=%d",
		result.ID, userID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
