package schedule_tour

import (
	"time"

	"github.com/m04kA/RPM-BookingService/pkg/types"
)

// Request модель запроса на запись на тур
type Request struct {
	UserID     int64            // ID пользователя (из заголовка аутентификации)
	PropertyID int64            // ID объекта
	Date       time.Time        // Дата тура (без времени)
	StartTime  types.TimeString // Время начала слота
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным туром
type Response struct {
	ID              int64            // ID созданного тура
	Reference       string           // Номер тура для клиента (UUID)
	UserID          int64            // ID пользователя
	PropertyID      int64            // ID объекта
	TourDate        time.Time        // Дата тура
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность тура
	Status          string           // Статус тура

	// Денормализованные данные
	PropertyTitle string  // Название объекта
	CustomerName  string  // Имя клиента
	Notes         *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
