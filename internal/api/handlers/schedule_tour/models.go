package schedule_tour

import (
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	scheduleTour "github.com/m04kA/RPM-BookingService/internal/usecase/schedule_tour"
	"github.com/m04kA/RPM-BookingService/pkg/types"
)

// ScheduleTourRequest HTTP request model
type ScheduleTourRequest struct {
	PropertyID int64   `json:"propertyId"`
	TourDate   string  `json:"tourDate"`  // "2026-03-15"
	StartTime  string  `json:"startTime"` // "10:00"
	Notes      *string `json:"notes,omitempty"`
}

// TourResponse HTTP response model
type TourResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	UserID          int64  `json:"userId"`
	PropertyID      int64  `json:"propertyId"`
	TourDate        string `json:"tourDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	PropertyTitle string  `json:"propertyTitle"`
	CustomerName  string  `json:"customerName"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleTourRequest) ToUseCaseRequest(userID int64) (*scheduleTour.Request, error) {
	// Парсим дату
	tourDate, err := time.Parse(domain.DateFormat, r.TourDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &scheduleTour.Request{
		UserID:     userID,
		PropertyID: r.PropertyID,
		Date:       tourDate,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleTour.Response) *TourResponse {
	return &TourResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		UserID:          resp.UserID,
		PropertyID:      resp.PropertyID,
		TourDate:        resp.TourDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PropertyTitle:   resp.PropertyTitle,
		CustomerName:    resp.CustomerName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
