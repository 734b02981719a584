package get_booking_quote

import (
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// Request модель запроса расчёта стоимости бронирования.
// Для short_term заполняются CheckIn/CheckOut, для long_term - длительность
// и опция оплаты. Неполный выбор дат - валидное состояние (цена 0), не ошибка.
type Request struct {
	PropertyID     int64                 // ID объекта
	CheckIn        *time.Time            // Дата заезда (short_term)
	CheckOut       *time.Time            // Дата выезда (short_term)
	DurationMonths int                   // Длительность аренды в месяцах (long_term)
	DurationYears  int                   // Длительность аренды в годах (long_term)
	PaymentOption  *domain.PaymentOption // Опция оплаты (только long_term)
}

// Response модель ответа с расчётом стоимости
type Response struct {
	PropertyID    int64             // ID объекта
	RentalTerm    domain.RentalTerm // Тип аренды объекта
	UnitPrice     int64             // Цена за единицу (ночь или месяц)
	Currency      string            // Валюта

	Nights      int // Количество ночей (short_term)
	TotalMonths int // Общая длительность в месяцах (long_term)

	PaymentOption *domain.PaymentOption // Применённая опция оплаты (long_term)

	TotalPrice    int64 // Полная стоимость проживания/аренды
	DepositAmount int64 // Залог (long_term)
	DueToday      int64 // К оплате при бронировании

	// Complete=false означает "выбор не завершён" (нулевая стоимость) -
	// отправка бронирования должна быть заблокирована
	Complete bool
}
