package propertyservice

// Property модель объекта недвижимости из PropertyService
type Property struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	RentalTerm string `json:"rental_term"` // short_term | long_term
	Price      int64  `json:"price"`       // за ночь (short_term) или за месяц (long_term)
	Currency   string `json:"currency"`

	// Даты, закрытые для бронирования, формат YYYY-MM-DD
	BlockedDates []string `json:"blocked_dates"`

	// Менеджеры объекта (владелец и его агенты)
	ManagerIDs []int64 `json:"manager_ids"`

	TourAvailability *TourAvailability `json:"tour_availability,omitempty"`
}

// TourAvailability недельный шаблон доступности туров по объекту
type TourAvailability struct {
	// Дни недели, в которые доступны туры ("monday", ..., "sunday")
	AvailableDays []string `json:"available_days"`

	StartTime           string `json:"start_time"` // "HH:MM", начало окна
	EndTime             string `json:"end_time"`   // "HH:MM", конец окна
	TourDurationMinutes int    `json:"tour_duration_minutes"`

	// Конкретные даты, закрытые для туров, формат YYYY-MM-DD
	BlockedDates []string `json:"blocked_dates"`

	// Опциональное требование оплаты тура
	RequiresPayment bool  `json:"requires_payment"`
	DepositAmount   int64 `json:"deposit_amount"`
	FullAmount      int64 `json:"full_amount"`
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
