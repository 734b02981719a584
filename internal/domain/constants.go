package domain

// Default tour slot configuration values
const (
	DefaultTourDurationMinutes = 30
	DefaultMaxConcurrentTours  = 1
	DefaultAdvanceBookingDays  = 0  // 0 = unlimited
	DefaultMinNoticeMinutes    = 60 // 1 hour
)

// Business validation constants
const (
	MinTourDurationMinutes      = 10
	MaxTourDurationMinutes      = 240 // 4 hours
	MinConcurrentTours          = 1
	MaxConcurrentTours          = 20
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinNoticeMinutes            = 0
	MaxNoticeMinutes            = 10080 // 1 week
	MaxLeaseYears               = 5
	MaxStayNights               = 365
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PaymentInstructions фиксированный платёжный блок, прикрепляется к бронированию
// дословно в момент создания (реквизиты для ручного перевода)
const PaymentInstructions = `Оплата банковским переводом в течение 48 часов.
Получатель: ООО "РПМ Маркетплейс"
Банк: АО "Альфа-Банк", БИК 044525593
Счёт: 40702810902340001234
Назначение платежа: укажите номер бронирования (reference).`

// InactiveStatuses список статусов, при которых бронирование или тур
// не занимает даты/слоты. Используется при подсчёте доступности.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByProperty,
}

// ActiveStatuses список статусов, занимающих даты/слоты
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
