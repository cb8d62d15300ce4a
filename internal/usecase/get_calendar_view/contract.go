package get_calendar_view

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ScheduleServiceClient интерфейс клиента ScheduleService
type ScheduleServiceClient interface {
	ListBookings(ctx context.Context, vendorID int64) ([]*domain.Booking, error)
	ListAvailability(ctx context.Context, vendorID int64) ([]*domain.AvailabilityWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
