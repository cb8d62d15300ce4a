package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// CalendarView represents the calendar rendering mode
type CalendarView string

const (
	ViewMonth CalendarView = "month"
	ViewWeek  CalendarView = "week"
	ViewDay   CalendarView = "day"
)

// ParseCalendarView конвертирует строку в CalendarView
func ParseCalendarView(s string) (CalendarView, bool) {
	switch CalendarView(s) {
	case ViewMonth, ViewWeek, ViewDay:
		return CalendarView(s), true
	default:
		return "", false
	}
}

// ViewState текущее состояние просмотра календаря: выбранная дата и режим
// Передаётся явно в use case - общего мутабельного состояния просмотра нет
type ViewState struct {
	SelectedDate types.DateString
	View         CalendarView
}
