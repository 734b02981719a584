package create_booking

import (
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64                 // ID пользователя (из заголовка аутентификации)
	PropertyID     int64                 // ID объекта
	CheckIn        *time.Time            // Дата заезда (short_term)
	CheckOut       *time.Time            // Дата выезда (short_term)
	DurationMonths int                   // Длительность аренды в месяцах (long_term)
	DurationYears  int                   // Длительность аренды в годах (long_term)
	PaymentOption  *domain.PaymentOption // Опция оплаты (обязательна для long_term)
	Notes          *string               // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64             // ID созданного бронирования
	Reference  string            // Номер бронирования для клиента (UUID)
	UserID     int64             // ID пользователя
	PropertyID int64             // ID объекта
	RentalTerm domain.RentalTerm // Тип аренды

	CheckIn        *time.Time            // Дата заезда (short_term)
	CheckOut       *time.Time            // Дата выезда (short_term)
	DurationMonths int                   // Длительность в месяцах (long_term)
	DurationYears  int                   // Длительность в годах (long_term)
	PaymentOption  *domain.PaymentOption // Опция оплаты (long_term)

	TotalPrice    int64  // Полная стоимость
	DepositAmount int64  // Залог
	DueToday      int64  // К оплате сейчас
	Currency      string // Валюта

	Status string // Статус бронирования

	// Денормализованные данные
	PropertyTitle string  // Название объекта
	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone string  // Телефон клиента
	Notes         *string // Заметки

	PaymentInstructions string // Платёжные реквизиты

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
