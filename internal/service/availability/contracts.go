package availability

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/scheduleservice"
)

// ScheduleServiceClient интерфейс клиента ScheduleService
type ScheduleServiceClient interface {
	ListAvailability(ctx context.Context, vendorID int64) ([]*domain.AvailabilityWindow, error)
	CreateAvailability(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	UpdateAvailability(ctx context.Context, windowID int64, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	DeleteAvailability(ctx context.Context, windowID int64, deleteRange *scheduleservice.DateRange) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
