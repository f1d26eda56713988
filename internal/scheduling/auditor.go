package scheduling

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
)

// ConflictPair пара броней, незаконно деливших один стол в пересекающихся окнах
type ConflictPair struct {
	First  *domain.Reservation // Бронь с меньшим ID
	Second *domain.Reservation
}

// FindConflicts находит все пары неотменённых броней, которые держат один
// стол в пересекающихся окнах на одну и ту же дату. Каждая неупорядоченная
// пара возвращается ровно один раз (First.ID < Second.ID); бронь никогда не
// сравнивается сама с собой. Отменённые и неназначенные брони пропускаются.
//
// Сложность квадратичная по количеству броней: аудит - диагностический
// отчёт о последствиях гонок или ручных ошибок, а не проверка на пути
// бронирования. Пустой отчёт - нормальное состояние системы.
func FindConflicts(reservations []*domain.Reservation, durationMinutes int) []ConflictPair {
	conflicts := make([]ConflictPair, 0)

	for i := 0; i < len(reservations); i++ {
		r1 := reservations[i]
		if !r1.IsActive() || !r1.IsAssigned() {
			continue
		}

		w1, err := NewWindow(r1.StartTime, durationMinutes)
		if err != nil {
			continue
		}

		for j := i + 1; j < len(reservations); j++ {
			r2 := reservations[j]
			if !r2.IsActive() || !r2.IsAssigned() {
				continue
			}
			if *r1.TableID != *r2.TableID {
				continue
			}
			if !sameDate(r1.Date, r2.Date) {
				continue
			}

			w2, err := NewWindow(r2.StartTime, durationMinutes)
			if err != nil {
				continue
			}

			if w1.Overlaps(w2) {
				first, second := r1, r2
				if second.ID < first.ID {
					first, second = second, first
				}
				conflicts = append(conflicts, ConflictPair{First: first, Second: second})
			}
		}
	}

	return conflicts
}

// sameDate сравнивает календарные даты без учёта времени суток
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
