package scheduling

import (
	"sort"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// AvailableTables возвращает столы, вмещающие компанию и свободные в
// запрошенном окне. reservations - набор броней на целевую дату; отменённые
// и неназначенные брони не занимают столы и пропускаются.
//
// Чистая функция: результат зависит только от аргументов, порядок элементов
// на входе не влияет на состав результата. Результат отсортирован по
// идентификатору стола. Пустой результат - не ошибка, а ответ
// "свободных столов на это время нет".
func AvailableTables(
	tables []*domain.Table,
	reservations []*domain.Reservation,
	start types.TimeString,
	durationMinutes int,
	partySize int,
) ([]*domain.Table, error) {
	target, err := NewWindow(start, durationMinutes)
	if err != nil {
		return nil, err
	}

	available := make([]*domain.Table, 0, len(tables))

	for _, table := range tables {
		if !table.Fits(partySize) {
			continue
		}
		if tableBusy(table.ID, reservations, target, durationMinutes) {
			continue
		}
		available = append(available, table)
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].ID < available[j].ID
	})

	return available, nil
}

// tableBusy проверяет, держит ли какая-нибудь активная бронь этот стол
// в окне, пересекающемся с целевым
func tableBusy(tableID string, reservations []*domain.Reservation, target Window, durationMinutes int) bool {
	for _, r := range reservations {
		if !r.IsActive() || !r.IsAssigned() {
			continue
		}
		if *r.TableID != tableID {
			continue
		}

		window, err := NewWindow(r.StartTime, durationMinutes)
		if err != nil {
			continue
		}

		if window.Overlaps(target) {
			return true
		}
	}

	return false
}
