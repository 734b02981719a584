package get_tour_slots

import (
	"github.com/m04kA/RPM-BookingService/internal/domain"
	getTourSlots "github.com/m04kA/RPM-BookingService/internal/usecase/get_tour_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	AvailableSpots  int    `json:"availableSpots"`
	TotalSpots      int    `json:"totalSpots"`
}

// SlotsResponse HTTP response model.
// Полностью занятые слоты включаются в список с availableSpots = 0:
// клиент показывает их занятыми, запись в них невозможна
type SlotsResponse struct {
	Date       string         `json:"date"` // "2026-03-15"
	PropertyID int64          `json:"propertyId"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTourSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
		}
	}

	return &SlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		PropertyID: resp.PropertyID,
		Slots:      slots,
	}
}
