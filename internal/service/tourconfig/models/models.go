package models

import (
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации слотов туров.
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	UserID              int64 `json:"userId"`
	SlotDurationMinutes *int  `json:"slotDurationMinutes,omitempty"`
	MaxConcurrentTours  *int  `json:"maxConcurrentTours,omitempty"`
	AdvanceBookingDays  *int  `json:"advanceBookingDays,omitempty"`
	MinNoticeMinutes    *int  `json:"minNoticeMinutes,omitempty"`
}

// DeleteConfigRequest запрос на удаление конфигурации
type DeleteConfigRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// ConfigResponse ответ с данными конфигурации слотов туров
type ConfigResponse struct {
	PropertyID          int64      `json:"propertyId"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	MaxConcurrentTours  int        `json:"maxConcurrentTours"`
	AdvanceBookingDays  int        `json:"advanceBookingDays"`
	MinNoticeMinutes    int        `json:"minNoticeMinutes"`
	IsDefault           bool       `json:"isDefault"` // true, если конфигурация не сохранена явно
	CreatedAt           *time.Time `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.TourSlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		PropertyID:          c.PropertyID,
		SlotDurationMinutes: c.SlotDurationMinutes,
		MaxConcurrentTours:  c.MaxConcurrentTours,
		AdvanceBookingDays:  c.AdvanceBookingDays,
		MinNoticeMinutes:    c.MinNoticeMinutes,
	}

	if !c.CreatedAt.IsZero() {
		created := c.CreatedAt
		resp.CreatedAt = &created
	}
	if !c.UpdatedAt.IsZero() {
		updated := c.UpdatedAt
		resp.UpdatedAt = &updated
	}

	return resp
}
