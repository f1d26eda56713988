// Package scheduling содержит чистую логику планирования броней:
// модель временного окна, фильтр доступности столов, эвристику выбора
// стола и аудит конфликтов. Пакет не обращается к хранилищу и не имеет
// побочных эффектов; все операции работают с переданными наборами данных.
package scheduling

import (
	"errors"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// ErrWindowOutOfDay окно брони не помещается в пределах своей даты
var ErrWindowOutOfDay = errors.New("scheduling: window does not fit within its date")

// Window полуоткрытый интервал [Start, End) в пределах одних суток.
// Бронь занимает стол ровно на это окно; длительность окна одинакова
// для всех броней и задаётся конфигурацией.
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// NewWindow строит окно длительностью durationMinutes от start.
// Окно, пересекающее границу суток, недопустимо: бронь целиком
// принадлежит своей дате.
func NewWindow(start types.TimeString, durationMinutes int) (Window, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %v", ErrWindowOutOfDay, err)
	}
	return Window{Start: start, End: end}, nil
}

// Overlaps проверяет реальное пересечение окон.
// Используются строгие неравенства: окна, граничащие точь-в-точь
// (одно заканчивается там, где начинается другое), НЕ пересекаются.
//
// Примеры:
// - [10:00, 11:30) и [11:00, 12:30) → пересекаются (11:00-11:30)
// - [10:00, 11:30) и [11:30, 13:00) → НЕ пересекаются (граничат)
// - [12:00, 13:30) и [10:00, 11:30) → НЕ пересекаются
func (w Window) Overlaps(other Window) bool {
	return w.Start.IsBefore(other.End) && w.End.IsAfter(other.Start)
}
