package domain

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a table reservation request in the system
type Reservation struct {
	ID           int64
	CustomerName string
	Contact      string // Свободная строка (телефон или email), ключ поиска броней клиента
	Date         time.Time
	StartTime    types.TimeString
	PartySize    int
	TableID      *string // NULL, пока стол не назначен
	Status       ReservationStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies (or may occupy) a slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsAssigned returns true if a table has been chosen for the reservation
func (r *Reservation) IsAssigned() bool {
	return r.TableID != nil && *r.TableID != ""
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	Date             *time.Time         // Конкретная дата (опционально, если nil - все даты)
	Contact          *string            // Контакт клиента (опционально)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые брони
}
