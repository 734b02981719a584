package update_tour_config

import (
	"github.com/m04kA/RPM-BookingService/internal/service/tourconfig/models"
)

// UpdateTourConfigRequest HTTP request model.
// Все поля опциональны - обновляются только переданные значения
type UpdateTourConfigRequest struct {
	SlotDurationMinutes *int `json:"slotDurationMinutes,omitempty"`
	MaxConcurrentTours  *int `json:"maxConcurrentTours,omitempty"`
	AdvanceBookingDays  *int `json:"advanceBookingDays,omitempty"`
	MinNoticeMinutes    *int `json:"minNoticeMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTourConfigRequest) ToServiceRequest(userID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:              userID,
		SlotDurationMinutes: r.SlotDurationMinutes,
		MaxConcurrentTours:  r.MaxConcurrentTours,
		AdvanceBookingDays:  r.AdvanceBookingDays,
		MinNoticeMinutes:    r.MinNoticeMinutes,
	}
}
