package scheduleservice

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// bookingModel модель бронирования из ScheduleService
type bookingModel struct {
	ID          int64  `json:"id"`
	VendorID    int64  `json:"vendor_id"`
	BookingDate string `json:"bookingDate"` // "2025-03-14"
	BookingTime string `json:"bookingTime"` // "10:00"
	Status      string `json:"status"`
}

// windowModel модель окна доступности из ScheduleService
type windowModel struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// windowPayload тело запроса создания/обновления окна доступности
type windowPayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// deleteRangePayload тело запроса удаления поддиапазона окна
// Пустое тело означает удаление окна целиком
type deleteRangePayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// conflictModel тело 409-ответа при конфликте удаления с бронированиями
type conflictModel struct {
	BookedDates []string `json:"bookedDates"`
}

// ErrorResponse модель ошибки от ScheduleService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (m *bookingModel) toDomain() (*domain.Booking, error) {
	date, err := types.NewDateStringFromString(m.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("booking id=%d: %w", m.ID, err)
	}
	bookingTime, err := types.NewTimeStringFromString(m.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("booking id=%d: %w", m.ID, err)
	}
	status, ok := domain.ParseBookingStatus(m.Status)
	if !ok {
		return nil, fmt.Errorf("booking id=%d: unknown status %q", m.ID, m.Status)
	}

	return &domain.Booking{
		ID:          m.ID,
		VendorID:    m.VendorID,
		BookingDate: date,
		BookingTime: bookingTime,
		Status:      status,
	}, nil
}

func (m *windowModel) toDomain(vendorID int64) (*domain.AvailabilityWindow, error) {
	startDate, err := types.NewDateStringFromString(m.StartDate)
	if err != nil {
		return nil, fmt.Errorf("window id=%d: %w", m.ID, err)
	}
	endDate, err := types.NewDateStringFromString(m.EndDate)
	if err != nil {
		return nil, fmt.Errorf("window id=%d: %w", m.ID, err)
	}
	startTime, err := types.NewTimeStringFromString(m.StartTime)
	if err != nil {
		return nil, fmt.Errorf("window id=%d: %w", m.ID, err)
	}
	endTime, err := types.NewTimeStringFromString(m.EndTime)
	if err != nil {
		return nil, fmt.Errorf("window id=%d: %w", m.ID, err)
	}

	return &domain.AvailabilityWindow{
		ID:        m.ID,
		VendorID:  vendorID,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

func windowPayloadFromDomain(w *domain.AvailabilityWindow) windowPayload {
	return windowPayload{
		StartDate: w.StartDate.String(),
		EndDate:   w.EndDate.String(),
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
	}
}
