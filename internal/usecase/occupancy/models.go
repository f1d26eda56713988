package occupancy

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// Request модель запроса обзора занятости зала
type Request struct {
	Date time.Time // Дата обзора
}

// ReservationSlot бронь в расписании стола
type ReservationSlot struct {
	ID           int64            // ID брони
	CustomerName string           // Имя гостя
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время окончания окна
	PartySize    int              // Размер компании
	Status       string           // Статус брони
}

// TableOccupancy стол и его брони на дату по возрастанию времени начала
type TableOccupancy struct {
	ID           string            // ID стола
	Name         string            // Имя стола
	Capacity     int               // Вместимость
	Reservations []ReservationSlot // Брони стола
}

// Response модель обзора занятости
type Response struct {
	Date       time.Time         // Дата обзора
	Tables     []TableOccupancy  // Расписание каждого стола
	Unassigned []ReservationSlot // Брони, ещё не получившие стол
	Total      int               // Активных броней на дату
}
