package list_reservations

import (
	"strconv"
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr, statusStr, includeCancelledStr string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		IncludeCancelled: false, // По умолчанию только активные
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим includeCancelled если указан
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
