package batch_assign

import "time"

// Исход обработки одной ожидающей брони
const (
	// OutcomeAssigned стол найден, бронь подтверждена
	OutcomeAssigned = "assigned"
	// OutcomeNoCapacity свободного стола нет, бронь остаётся в ожидании
	OutcomeNoCapacity = "no_capacity"
	// OutcomeSkipped бронь изменилась между выборкой и обработкой
	OutcomeSkipped = "skipped"
	// OutcomeFailed ошибка хранилища, обработка пакета прервана
	OutcomeFailed = "failed"
)

// Request модель запроса на пакетное назначение столов
type Request struct {
	Date time.Time // Дата, ожидающие брони которой обрабатываются
}

// ItemResult результат обработки одной брони
type ItemResult struct {
	ReservationID int64   // ID брони
	Outcome       string  // Исход обработки
	TableID       *string // Назначенный стол (только для assigned)
	TableName     *string // Имя назначенного стола
}

// Response модель итога пакетного назначения
type Response struct {
	Date     time.Time    // Обработанная дата
	Pending  int          // Сколько броней ожидало стол
	Assigned int          // Сколько подтверждено этим запуском
	Results  []ItemResult // Поэлементные исходы в порядке обработки
}
