package scheduling

import (
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
)

// SelectTable выбирает один стол из кандидатов по детерминированному
// правилу минимизации потерь:
//  1. по возрастанию waste = вместимость - размер компании;
//  2. при равных потерях - по возрастанию вместимости;
//  3. далее - по возрастанию идентификатора стола.
//
// Жадная минимизация потерь приближает упаковку без глобального перебора:
// решение за один проход, полностью предсказуемое. Никакой случайности -
// одинаковый вход всегда даёт один и тот же стол.
//
// Для пустого набора кандидатов возвращает nil: "назначение невозможно".
// Это не ошибка - решение (ожидание, отказ, другое время) принимает
// вызывающий.
func SelectTable(candidates []*domain.Table, partySize int) *domain.Table {
	var best *domain.Table

	for _, table := range candidates {
		// Стол меньше компании не рассматривается, даже если попал в кандидаты
		if !table.Fits(partySize) {
			continue
		}
		if best == nil || tableLess(table, best, partySize) {
			best = table
		}
	}

	return best
}

// tableLess сравнивает столы в порядке приоритета эвристики
func tableLess(a, b *domain.Table, partySize int) bool {
	if a.Waste(partySize) != b.Waste(partySize) {
		return a.Waste(partySize) < b.Waste(partySize)
	}
	if a.Capacity != b.Capacity {
		return a.Capacity < b.Capacity
	}
	return a.ID < b.ID
}
