package create_reservation

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// NoAvailabilityPolicy поведение, когда свободного стола нет
type NoAvailabilityPolicy string

const (
	// PolicyPending бронь создается в статусе ожидания без стола
	PolicyPending NoAvailabilityPolicy = "pending"
	// PolicyReject запрос отклоняется сразу
	PolicyReject NoAvailabilityPolicy = "reject"
)

// Request модель запроса на создание брони
type Request struct {
	CustomerName string           // Имя гостя
	Contact      string           // Контакт гостя (телефон или email)
	Date         time.Time        // Дата брони (без времени)
	StartTime    types.TimeString // Время начала (например, "19:00")
	PartySize    int              // Размер компании
}

// Response модель ответа с созданной бронью
type Response struct {
	ID           int64            // ID созданной брони
	CustomerName string           // Имя гостя
	Contact      string           // Контакт гостя
	Date         time.Time        // Дата брони
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время окончания окна
	PartySize    int              // Размер компании
	TableID      *string          // Назначенный стол (nil для ожидающих броней)
	TableName    *string          // Имя назначенного стола
	Status       string           // Статус брони

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
