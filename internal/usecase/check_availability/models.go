package check_availability

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// Request модель запроса проверки доступности
type Request struct {
	Date      time.Time        // Дата брони (без времени)
	StartTime types.TimeString // Желаемое время начала
	PartySize int              // Размер компании
}

// TableInfo свободный стол в запрошенном окне
type TableInfo struct {
	ID       string // ID стола
	Name     string // Имя стола
	Capacity int    // Вместимость
}

// Alternative соседнее время, на которое есть свободные столы.
// Предлагается только когда запрошенное окно полностью занято
type Alternative struct {
	StartTime       types.TimeString // Альтернативное время начала
	EndTime         types.TimeString // Время окончания окна
	TablesAvailable int              // Сколько столов свободно
}

// Response модель результата проверки доступности
type Response struct {
	Date             time.Time        // Дата брони
	StartTime        types.TimeString // Запрошенное время
	EndTime          types.TimeString // Время окончания окна
	PartySize        int              // Размер компании
	Available        []TableInfo      // Свободные столы по возрастанию ID
	SuggestedTableID *string          // Выбор эвристики (nil, если столов нет)
	Alternatives     []Alternative    // Соседние времена со свободными столами
}
