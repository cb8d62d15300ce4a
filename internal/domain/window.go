package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// AvailabilityWindow represents a vendor-declared availability range:
// daily availability between StartTime and EndTime on every calendar date
// in [StartDate, EndDate] (both inclusive, StartDate <= EndDate)
type AvailabilityWindow struct {
	ID        int64
	VendorID  int64
	StartDate types.DateString
	EndDate   types.DateString
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Covers returns true if the window's date range contains the given date
func (w *AvailabilityWindow) Covers(date types.DateString) bool {
	return !date.Before(w.StartDate) && !date.After(w.EndDate)
}

// ContainsRange returns true if [start, end] lies entirely within the window's date range
func (w *AvailabilityWindow) ContainsRange(start, end types.DateString) bool {
	return !start.Before(w.StartDate) && !end.After(w.EndDate)
}

// SingleDay returns true if the window spans exactly one calendar date
func (w *AvailabilityWindow) SingleDay() bool {
	return w.StartDate.Equal(w.EndDate)
}
