package get_property_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	propertyID int64,
	userID int64,
	statusStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.GetPropertyBookingsRequest, error) {
	req := &models.GetPropertyBookingsRequest{
		UserID:          userID,
		PropertyID:      propertyID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим период если указан
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &endDate
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
