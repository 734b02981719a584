package cancel_tour

import (
	"github.com/m04kA/RPM-BookingService/internal/service/tours/models"
)

// CancelTourRequest HTTP request model
type CancelTourRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelTourRequest) ToServiceRequest(userID int64) *models.CancelTourRequest {
	return &models.CancelTourRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
