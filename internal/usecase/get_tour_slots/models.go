package get_tour_slots

import (
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// Request модель запроса на получение слотов для туров
type Request struct {
	UserID     int64     // ID пользователя (для логирования, не влияет на результат)
	PropertyID int64     // ID объекта
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time         // Дата, на которую запрашивались слоты
	PropertyID int64             // ID объекта
	Slots      []domain.TourSlot // Список слотов
}
