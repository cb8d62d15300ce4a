package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func booking(id int64, date, tm string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		VendorID:    1,
		BookingDate: types.DateString(date),
		BookingTime: types.TimeString(tm),
		Status:      domain.StatusApproved,
	}
}

func TestIndexByDate_GroupsAndSorts(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, "2025-03-15", "14:00"),
		booking(2, "2025-03-15", "09:30"),
		booking(3, "2025-03-16", "10:00"),
		booking(4, "2025-03-15", "11:00"),
	}

	idx := IndexByDate(bookings)

	day := idx.Lookup("2025-03-15")
	require.Len(t, day, 3)
	assert.Equal(t, int64(2), day[0].ID)
	assert.Equal(t, int64(4), day[1].ID)
	assert.Equal(t, int64(1), day[2].ID)

	next := idx.Lookup("2025-03-16")
	require.Len(t, next, 1)
	assert.Equal(t, int64(3), next[0].ID)
}

func TestIndexByDate_EqualTimesKeepInputOrder(t *testing.T) {
	bookings := []*domain.Booking{
		booking(10, "2025-03-15", "12:00"),
		booking(11, "2025-03-15", "12:00"),
		booking(12, "2025-03-15", "12:00"),
	}

	idx := IndexByDate(bookings)

	day := idx.Lookup("2025-03-15")
	require.Len(t, day, 3)
	assert.Equal(t, int64(10), day[0].ID)
	assert.Equal(t, int64(11), day[1].ID)
	assert.Equal(t, int64(12), day[2].ID)
}

func TestBookingIndex_LookupMissingDate(t *testing.T) {
	idx := IndexByDate(nil)
	assert.Empty(t, idx.Lookup("2025-03-15"))

	var nilIdx *BookingIndex
	assert.Empty(t, nilIdx.Lookup("2025-03-15"))
}
