package models

import (
	"errors"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid tour status")
)

// Request модели

// CancelTourRequest запрос на отмену тура
type CancelTourRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserToursRequest запрос на получение туров пользователя
type GetUserToursRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// TourResponse ответ с данными тура
type TourResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	UserID          int64  `json:"userId"`
	PropertyID      int64  `json:"propertyId"`
	TourDate        string `json:"tourDate"`  // "2026-03-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные
	PropertyTitle string  `json:"propertyTitle"`
	CustomerName  string  `json:"customerName"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TourListResponse ответ со списком туров
type TourListResponse struct {
	Tours []TourResponse `json:"tours"`
}

// Методы конвертации

// FromDomainTour конвертирует domain модель в DTO
func FromDomainTour(t *domain.Tour) *TourResponse {
	if t == nil {
		return nil
	}

	resp := &TourResponse{
		ID:                 t.ID,
		Reference:          t.Reference,
		UserID:             t.UserID,
		PropertyID:         t.PropertyID,
		TourDate:           t.TourDate.Format(domain.DateFormat),
		StartTime:          t.StartTime.String(),
		DurationMinutes:    t.DurationMinutes,
		Status:             string(t.Status),
		PropertyTitle:      t.PropertyTitle,
		CustomerName:       t.CustomerName,
		Notes:              t.Notes,
		CancellationReason: t.CancellationReason,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if t.CancelledAt != nil {
		cancelledStr := t.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainTourList конвертирует список domain моделей в DTO
func FromDomainTourList(tours []*domain.Tour) *TourListResponse {
	if tours == nil {
		return &TourListResponse{
			Tours: []TourResponse{},
		}
	}

	resp := &TourListResponse{
		Tours: make([]TourResponse, len(tours)),
	}

	for i, tour := range tours {
		if tourResp := FromDomainTour(tour); tourResp != nil {
			resp.Tours[i] = *tourResp
		}
	}

	return resp
}

// ToDomainTourStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainTourStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByProperty,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
