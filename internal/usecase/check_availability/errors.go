package check_availability

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("check_availability: invalid input")

	// ErrWindowOutOfDay окно брони не помещается в пределах даты
	ErrWindowOutOfDay = errors.New("check_availability: reservation window does not fit within the day")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("check_availability: internal error")
)
