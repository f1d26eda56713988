package audit_conflicts

import "errors"

var (
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("audit_conflicts: internal error")
)
