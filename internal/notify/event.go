package notify

import (
	"time"

	"github.com/google/uuid"
)

// Виды событий уведомлений
const (
	KindReservationPending   = "reservation.pending"
	KindReservationConfirmed = "reservation.confirmed"
	KindReservationCancelled = "reservation.cancelled"
)

// Event событие уведомления гостя.
// Содержит всё необходимое потребителю: писать в лог, слать сообщение,
// собирать аналитику без обращения к основной БД.
type Event struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	ReservationID int64     `json:"reservation_id"`
	Contact       string    `json:"contact"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

func newEvent(kind string, reservationID int64, contact, message string) Event {
	return Event{
		ID:            uuid.NewString(),
		Kind:          kind,
		ReservationID: reservationID,
		Contact:       contact,
		Message:       message,
		CreatedAt:     time.Now().UTC(),
	}
}
