package get_calendar_view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/availability"
	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockClient struct {
	bookings []*domain.Booking
	windows  []*domain.AvailabilityWindow

	bookingsErr error
	windowsErr  error
}

func (m *mockClient) ListBookings(ctx context.Context, vendorID int64) ([]*domain.Booking, error) {
	return m.bookings, m.bookingsErr
}

func (m *mockClient) ListAvailability(ctx context.Context, vendorID int64) ([]*domain.AvailabilityWindow, error) {
	return m.windows, m.windowsErr
}

// Все тесты фиксируют "сейчас" на 2025-03-15 12:00 UTC
func newTestUseCase(t *testing.T, client *mockClient) *UseCase {
	t.Helper()
	anchor, err := calendar.NewAnchorAt("UTC", time.Sunday, func() time.Time {
		return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	})
	require.NoError(t, err)

	return NewUseCase(
		client,
		anchor,
		calendar.NewGridBuilder(anchor),
		availability.NewResolver(anchor),
		nopLogger{},
	)
}

func monthRequest(date types.DateString) *Request {
	return &Request{
		VendorID: 7,
		State: domain.ViewState{
			SelectedDate: date,
			View:         domain.ViewMonth,
		},
	}
}

func TestExecute_MonthView(t *testing.T) {
	client := &mockClient{
		bookings: []*domain.Booking{
			{ID: 1, VendorID: 7, BookingDate: "2025-03-18", BookingTime: "14:00", Status: domain.StatusApproved},
			{ID: 2, VendorID: 7, BookingDate: "2025-03-18", BookingTime: "10:00", Status: domain.StatusPending},
		},
		windows: []*domain.AvailabilityWindow{
			{ID: 100, VendorID: 7, StartDate: "2025-03-16", EndDate: "2025-03-20", StartTime: "09:00", EndTime: "18:00"},
		},
	}
	uc := newTestUseCase(t, client)

	resp, err := uc.Execute(context.Background(), monthRequest("2025-03-01"))
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.VendorID)
	assert.Equal(t, domain.ViewMonth, resp.View)
	assert.Equal(t, types.DateString("2025-03-15"), resp.Today)
	// Месячная сетка не несёт часовой колонки
	assert.Empty(t, resp.Hours)
	require.Len(t, resp.Cells, 42)

	byDate := make(map[types.DateString]DayCell, len(resp.Cells))
	for _, cell := range resp.Cells {
		byDate[cell.Date] = cell
	}

	today := byDate["2025-03-15"]
	assert.True(t, today.IsToday)
	assert.False(t, today.IsPast)
	assert.False(t, today.HasCoverage)

	past := byDate["2025-03-10"]
	assert.True(t, past.IsPast)
	assert.False(t, past.IsToday)

	covered := byDate["2025-03-18"]
	assert.True(t, covered.HasCoverage)
	require.Len(t, covered.Windows, 1)
	assert.Equal(t, int64(100), covered.Windows[0].ID)

	// Бронирования дня упорядочены по времени
	require.Len(t, covered.Bookings, 2)
	assert.Equal(t, int64(2), covered.Bookings[0].ID)
	assert.Equal(t, int64(1), covered.Bookings[1].ID)

	// За пределами окна покрытия нет
	assert.False(t, byDate["2025-03-21"].HasCoverage)
	assert.Empty(t, byDate["2025-03-21"].Bookings)

	// Ячейка соседнего месяца помечена приглушённой
	assert.False(t, byDate["2025-02-23"].IsCurrentPeriod)
}

func TestExecute_WeekViewCarriesHours(t *testing.T) {
	uc := newTestUseCase(t, &mockClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID: 7,
		State: domain.ViewState{
			SelectedDate: "2025-03-12",
			View:         domain.ViewWeek,
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Cells, 7)
	assert.Equal(t, types.DateString("2025-03-09"), resp.Cells[0].Date)
	require.Len(t, resp.Hours, 24)
	assert.Equal(t, types.TimeString("00:00"), resp.Hours[0])
}

func TestExecute_DayView(t *testing.T) {
	uc := newTestUseCase(t, &mockClient{
		windows: []*domain.AvailabilityWindow{
			{ID: 100, VendorID: 7, StartDate: "2025-03-16", EndDate: "2025-03-20", StartTime: "09:00", EndTime: "18:00"},
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		VendorID: 7,
		State: domain.ViewState{
			SelectedDate: "2025-03-18",
			View:         domain.ViewDay,
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Cells, 1)
	assert.Equal(t, types.DateString("2025-03-18"), resp.Cells[0].Date)
	assert.True(t, resp.Cells[0].IsCurrentPeriod)
	assert.True(t, resp.Cells[0].HasCoverage)
	require.Len(t, resp.Hours, 24)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(t, &mockClient{})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "non-positive vendor",
			req: &Request{
				VendorID: 0,
				State:    domain.ViewState{SelectedDate: "2025-03-01", View: domain.ViewMonth},
			},
		},
		{
			name: "missing date",
			req: &Request{
				VendorID: 7,
				State:    domain.ViewState{View: domain.ViewMonth},
			},
		},
		{
			name: "malformed date",
			req: &Request{
				VendorID: 7,
				State:    domain.ViewState{SelectedDate: "03/01/2025", View: domain.ViewMonth},
			},
		},
		{
			name: "missing view",
			req: &Request{
				VendorID: 7,
				State:    domain.ViewState{SelectedDate: "2025-03-01"},
			},
		},
		{
			name: "unknown view",
			req: &Request{
				VendorID: 7,
				State:    domain.ViewState{SelectedDate: "2025-03-01", View: "year"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestExecute_BackendErrors(t *testing.T) {
	uc := newTestUseCase(t, &mockClient{bookingsErr: errors.New("connection refused")})
	_, err := uc.Execute(context.Background(), monthRequest("2025-03-01"))
	assert.True(t, errors.Is(err, ErrInternal))

	uc = newTestUseCase(t, &mockClient{windowsErr: errors.New("connection refused")})
	_, err = uc.Execute(context.Background(), monthRequest("2025-03-01"))
	assert.True(t, errors.Is(err, ErrInternal))
}
