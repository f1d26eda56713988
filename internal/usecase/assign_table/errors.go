package assign_table

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("assign_table: invalid input")

	// ErrReservationNotFound бронь не найдена
	ErrReservationNotFound = errors.New("assign_table: reservation not found")

	// ErrTableNotFound указанный стол не существует
	ErrTableNotFound = errors.New("assign_table: table not found")

	// ErrReservationCancelled отменённой брони стол не назначается
	ErrReservationCancelled = errors.New("assign_table: reservation is cancelled")

	// ErrTableTooSmall вместимость стола меньше размера компании
	ErrTableTooSmall = errors.New("assign_table: table capacity is less than party size")

	// ErrTableConflict стол занят другой бронью в пересекающемся окне
	ErrTableConflict = errors.New("assign_table: table is occupied in an overlapping window")

	// ErrStoreConflict конфликт конкурентных транзакций, можно повторить запрос
	ErrStoreConflict = errors.New("assign_table: storage conflict, please retry")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("assign_table: internal error")
)
