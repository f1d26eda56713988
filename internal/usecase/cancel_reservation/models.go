package cancel_reservation

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// Request модель запроса на отмену брони
// Contact задается для публичной отмены: бронь отменяется только при совпадении
// контакта. Для административной отмены Contact равен nil.
type Request struct {
	ReservationID int64
	Contact       *string
}

// Response модель ответа с отменённой бронью
type Response struct {
	ID           int64
	CustomerName string
	Contact      string
	Date         time.Time
	StartTime    types.TimeString
	PartySize    int
	TableID      *string
	Status       string
}
