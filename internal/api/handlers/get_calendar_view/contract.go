package get_calendar_view

import (
	"context"

	getCalendarView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_view"
)

type GetCalendarViewUseCase interface {
	Execute(ctx context.Context, req *getCalendarView.Request) (*getCalendarView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
