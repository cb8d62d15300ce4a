package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Cell одна ячейка календарной сетки
// IsCurrentPeriod=false помечает дни соседних месяцев, добивающие сетку
// до целых недель (рендерятся приглушённо)
type Cell struct {
	Date            types.DateString
	IsCurrentPeriod bool
}

// GridBuilder строит календарные сетки месяц/неделя/день
// Весь шаг по дням - календарный (AddDays), а не арифметика таймстемпов,
// поэтому переходы на летнее/зимнее время не сдвигают ячейки
type GridBuilder struct {
	anchor *Anchor
}

// NewGridBuilder создает новый построитель сеток
func NewGridBuilder(anchor *Anchor) *GridBuilder {
	return &GridBuilder{anchor: anchor}
}

// BuildMonthMatrix строит прямоугольную сетку (кратную 7 ячейкам), полностью
// покрывающую месяц, содержащий ref. Сетка добита целыми неделями с обеих сторон:
// от startOfWeek(startOfMonth(ref)) до endOfWeek(endOfMonth(ref))
func (g *GridBuilder) BuildMonthMatrix(ref types.DateString) []Cell {
	first := g.anchor.StartOfWeek(g.anchor.StartOfMonth(ref))
	last := g.anchor.EndOfWeek(g.anchor.EndOfMonth(ref))

	cells := make([]Cell, 0, 6*domain.DaysPerWeek)
	for d := first; !d.After(last); d = d.AddDays(1) {
		cells = append(cells, Cell{
			Date:            d,
			IsCurrentPeriod: d.SameMonth(ref),
		})
	}

	return cells
}

// BuildWeekRow строит ряд из 7 последовательных дат, начиная с startOfWeek(ref)
func (g *GridBuilder) BuildWeekRow(ref types.DateString) []Cell {
	start := g.anchor.StartOfWeek(ref)

	cells := make([]Cell, domain.DaysPerWeek)
	for i := range cells {
		cells[i] = Cell{
			Date:            start.AddDays(i),
			IsCurrentPeriod: true,
		}
	}

	return cells
}

// BuildHourColumn возвращает 24 часовые метки для time-grid раскладок
func (g *GridBuilder) BuildHourColumn() []types.TimeString {
	hours := make([]types.TimeString, domain.HoursPerDay)
	for i := range hours {
		hours[i] = types.TimeString(fmt.Sprintf("%02d:00", i))
	}
	return hours
}
