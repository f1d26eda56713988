package audit_conflicts

import (
	"context"

	auditConflicts "github.com/m04kA/CTRS-ReservationService/internal/usecase/audit_conflicts"
)

type AuditConflictsUseCase interface {
	Execute(ctx context.Context, req *auditConflicts.Request) (*auditConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
