package bookings

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ScheduleServiceClient интерфейс клиента ScheduleService
type ScheduleServiceClient interface {
	ListBookings(ctx context.Context, vendorID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
