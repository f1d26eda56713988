package occupancy

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("occupancy: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("occupancy: internal error")
)
