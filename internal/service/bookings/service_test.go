package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockClient struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockClient) ListBookings(ctx context.Context, vendorID int64) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

func testBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, VendorID: 7, BookingDate: "2025-03-16", BookingTime: "14:00", Status: domain.StatusApproved},
		{ID: 2, VendorID: 7, BookingDate: "2025-03-15", BookingTime: "10:00", Status: domain.StatusPending},
		{ID: 3, VendorID: 7, BookingDate: "2025-03-16", BookingTime: "09:00", Status: domain.StatusRejected},
		{ID: 4, VendorID: 7, BookingDate: "2025-03-15", BookingTime: "09:00", Status: domain.StatusApproved},
	}
}

func TestGetVendorBookings_SortsByDateThenTime(t *testing.T) {
	svc := NewService(&mockClient{bookings: testBookings()}, nopLogger{})

	resp, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{VendorID: 7})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 4)

	gotIDs := make([]int64, len(resp.Bookings))
	for i, b := range resp.Bookings {
		gotIDs[i] = b.ID
	}
	assert.Equal(t, []int64{4, 2, 3, 1}, gotIDs)
}

func TestGetVendorBookings_StatusFilter(t *testing.T) {
	svc := NewService(&mockClient{bookings: testBookings()}, nopLogger{})

	resp, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{
		VendorID: 7,
		Status:   ptr.Ptr("approved"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(4), resp.Bookings[0].ID)
	assert.Equal(t, int64(1), resp.Bookings[1].ID)
}

func TestGetVendorBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&mockClient{bookings: testBookings()}, nopLogger{})

	_, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{
		VendorID: 7,
		Status:   ptr.Ptr("maybe"),
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGetVendorBookings_InvalidVendor(t *testing.T) {
	svc := NewService(&mockClient{}, nopLogger{})

	_, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{VendorID: 0})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGetVendorBookings_BackendError(t *testing.T) {
	svc := NewService(&mockClient{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetVendorBookings(context.Background(), &models.GetVendorBookingsRequest{VendorID: 7})
	assert.True(t, errors.Is(err, ErrInternal))
}
