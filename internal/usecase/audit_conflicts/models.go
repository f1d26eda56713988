package audit_conflicts

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// Request модель запроса аудита; без даты проверяется всё расписание
type Request struct {
	Date *time.Time // Дата аудита (опционально)
}

// ReservationRef краткое описание брони в отчёте о конфликте
type ReservationRef struct {
	ID           int64            // ID брони
	CustomerName string           // Имя гостя
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время окончания окна
	PartySize    int              // Размер компании
	Status       string           // Статус брони
}

// ConflictInfo пара броней, деливших один стол в пересекающихся окнах
type ConflictInfo struct {
	TableID string         // Спорный стол
	Date    time.Time      // Дата конфликта
	First   ReservationRef // Бронь с меньшим ID
	Second  ReservationRef // Бронь с большим ID
}

// Response модель отчёта аудита
type Response struct {
	Date                *time.Time     // Дата аудита (nil - всё расписание)
	ReservationsChecked int            // Сколько броней проверено
	Conflicts           []ConflictInfo // Найденные конфликты
}
