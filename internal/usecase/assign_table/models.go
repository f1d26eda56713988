package assign_table

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// Request модель запроса на ручное назначение стола
type Request struct {
	ReservationID int64  // ID брони
	TableID       string // ID назначаемого стола
}

// Response модель ответа с подтверждённой бронью
type Response struct {
	ID           int64            // ID брони
	CustomerName string           // Имя гостя
	Contact      string           // Контакт гостя
	Date         time.Time        // Дата брони
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время окончания окна
	PartySize    int              // Размер компании
	TableID      string           // Назначенный стол
	TableName    string           // Имя назначенного стола
	Status       string           // Статус брони (confirmed)
}
