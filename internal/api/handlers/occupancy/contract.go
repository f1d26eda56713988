package occupancy

import (
	"context"

	occupancyUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/occupancy"
)

type OccupancyUseCase interface {
	Execute(ctx context.Context, req *occupancyUC.Request) (*occupancyUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
