package batch_assign

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("batch_assign: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("batch_assign: internal error")
)
