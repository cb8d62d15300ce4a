package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Anchor единственный источник "сейчас"/"сегодня" для всего движка
// Все сравнения с текущей датой идут через референсную таймзону из конфигурации,
// а не через локальные часы вызывающей стороны. Это единственное место,
// где разрешена зонозависимая арифметика
type Anchor struct {
	loc       *time.Location
	weekStart time.Weekday
	nowFn     func() time.Time
}

// NewAnchor создает Anchor для указанной IANA-таймзоны и дня начала недели
func NewAnchor(timezone string, weekStart time.Weekday) (*Anchor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reference timezone %q: %w", timezone, err)
	}

	return &Anchor{
		loc:       loc,
		weekStart: weekStart,
		nowFn:     time.Now,
	}, nil
}

// NewAnchorAt создает Anchor с фиксированным источником времени (для тестов)
func NewAnchorAt(timezone string, weekStart time.Weekday, nowFn func() time.Time) (*Anchor, error) {
	a, err := NewAnchor(timezone, weekStart)
	if err != nil {
		return nil, err
	}
	a.nowFn = nowFn
	return a, nil
}

// Now возвращает текущий момент в референсной таймзоне
func (a *Anchor) Now() time.Time {
	return a.nowFn().In(a.loc)
}

// Today возвращает сегодняшнюю календарную дату в референсной таймзоне
func (a *Anchor) Today() types.DateString {
	return types.NewDateString(a.Now())
}

// IsPast возвращает true, если дата раньше сегодняшней
func (a *Anchor) IsPast(date types.DateString) bool {
	return date.Before(a.Today())
}

// ClampNotPast возвращает date, если она не в прошлом, иначе сегодняшнюю дату
func (a *Anchor) ClampNotPast(date types.DateString) types.DateString {
	if today := a.Today(); date.Before(today) {
		return today
	}
	return date
}

// WeekStart возвращает сконфигурированный день начала недели
func (a *Anchor) WeekStart() time.Weekday {
	return a.weekStart
}

// StartOfMonth возвращает первое число месяца, содержащего date
func (a *Anchor) StartOfMonth(date types.DateString) types.DateString {
	t, err := date.Time()
	if err != nil {
		return date
	}
	return types.NewDateStringFromDate(t.Year(), t.Month(), 1)
}

// EndOfMonth возвращает последнее число месяца, содержащего date
func (a *Anchor) EndOfMonth(date types.DateString) types.DateString {
	t, err := date.Time()
	if err != nil {
		return date
	}
	// День 0 следующего месяца = последний день текущего
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return types.NewDateString(last)
}

// StartOfWeek возвращает первый день недели, содержащей date,
// с учётом сконфигурированного дня начала недели
func (a *Anchor) StartOfWeek(date types.DateString) types.DateString {
	offset := int(date.Weekday()) - int(a.weekStart)
	if offset < 0 {
		offset += 7
	}
	return date.AddDays(-offset)
}

// EndOfWeek возвращает последний день недели, содержащей date
func (a *Anchor) EndOfWeek(date types.DateString) types.DateString {
	return a.StartOfWeek(date).AddDays(6)
}

// ParseWeekStart конвертирует конфигурационное значение в time.Weekday
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(s) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("invalid week start day: %q", s)
	}
}
