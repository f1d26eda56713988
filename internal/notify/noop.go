package notify

import "github.com/m04kA/CTRS-ReservationService/internal/domain"

// Noop заглушка доставки для выключенных уведомлений
type Noop struct{}

func (Noop) ReservationPending(*domain.Reservation)           {}
func (Noop) ReservationConfirmed(*domain.Reservation, string) {}
func (Noop) ReservationCancelled(*domain.Reservation)         {}
