package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a vendor booking
// Bookings are owned and mutated by the external booking subsystem;
// this engine only reads them to render calendar cells and to reason
// about deletion conflicts
type Booking struct {
	ID          int64
	VendorID    int64
	BookingDate types.DateString
	BookingTime types.TimeString
	Status      BookingStatus
}

// IsActive returns true if the booking still blocks its date
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// ParseBookingStatus конвертирует строку в BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return BookingStatus(s), true
	default:
		return "", false
	}
}
