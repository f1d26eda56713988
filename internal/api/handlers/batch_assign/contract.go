package batch_assign

import (
	"context"

	batchAssign "github.com/m04kA/CTRS-ReservationService/internal/usecase/batch_assign"
)

type BatchAssignUseCase interface {
	Execute(ctx context.Context, req *batchAssign.Request) (*batchAssign.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
