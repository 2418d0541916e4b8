package select_dates

import (
	"context"

	selectDates "github.com/m04kA/hotel-booking-service/internal/usecase/select_dates"
)

type SelectDatesUseCase interface {
	Execute(ctx context.Context, req *selectDates.Request) (*selectDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
