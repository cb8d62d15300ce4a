package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Calendar layout constants
const (
	DaysPerWeek = 7
	HoursPerDay = 24
)

// ActiveStatuses список статусов бронирований, блокирующих дату
// Используется при проверке конфликтов удаления окон доступности
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses список статусов бронирований, не блокирующих дату
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCompleted,
}
