package get_calendar_view

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса календарного представления
type Request struct {
	VendorID int64            // ID вендора
	State    domain.ViewState // Выбранная дата + режим (month/week/day)
}

// Response модель ответа с данными для рендеринга календарной сетки
type Response struct {
	VendorID      int64
	View          domain.CalendarView
	ReferenceDate types.DateString
	Today         types.DateString
	Cells         []DayCell          // Ячейки сетки в порядке рендеринга
	Hours         []types.TimeString // Часовые метки (только для week/day)
}

// DayCell данные одной ячейки календаря
// Эфемерная структура: пересобирается при каждом рендере, собственного
// жизненного цикла не имеет
type DayCell struct {
	Date            types.DateString
	IsCurrentPeriod bool // false для дней соседних месяцев (приглушённый рендер)
	IsToday         bool
	IsPast          bool
	HasCoverage     bool // Есть ли на дату хотя бы одно окно доступности
	Bookings        []*domain.Booking            // Упорядочены по времени
	Windows         []*domain.AvailabilityWindow // Окна, покрывающие дату
}
