package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func testGridBuilder(t *testing.T, weekStart time.Weekday) *GridBuilder {
	t.Helper()
	anchor := fixedAnchor(t, "UTC", weekStart, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	return NewGridBuilder(anchor)
}

func TestBuildMonthMatrix_March2025SundayStart(t *testing.T) {
	grid := testGridBuilder(t, time.Sunday)

	cells := grid.BuildMonthMatrix("2025-03-01")

	// Март 2025 с воскресным началом недели: 6 полных недель
	require.Len(t, cells, 42)
	assert.Equal(t, types.DateString("2025-02-23"), cells[0].Date)
	assert.Equal(t, types.DateString("2025-04-05"), cells[len(cells)-1].Date)

	// Дни соседних месяцев помечены как вне текущего периода
	assert.False(t, cells[0].IsCurrentPeriod)
	assert.False(t, cells[len(cells)-1].IsCurrentPeriod)

	inPeriod := 0
	for _, cell := range cells {
		if cell.IsCurrentPeriod {
			inPeriod++
			assert.True(t, cell.Date.SameMonth("2025-03-01"))
		}
	}
	assert.Equal(t, 31, inPeriod)
}

func TestBuildMonthMatrix_Properties(t *testing.T) {
	grid := testGridBuilder(t, time.Sunday)

	refs := []types.DateString{
		"2025-01-15",
		"2025-02-01",
		"2025-06-30",
		"2025-12-31",
		"2024-02-29",
		"2026-02-10", // февраль 2026 начинается с воскресенья
	}

	for _, ref := range refs {
		t.Run(string(ref), func(t *testing.T) {
			cells := grid.BuildMonthMatrix(ref)

			// Ячеек всегда кратно 7
			assert.Zero(t, len(cells)%domain.DaysPerWeek)

			// Сетка полностью покрывает месяц
			anchor := grid.anchor
			assert.False(t, anchor.StartOfMonth(ref).Before(cells[0].Date))
			assert.False(t, anchor.EndOfMonth(ref).After(cells[len(cells)-1].Date))

			// Даты строго последовательны
			for i := 1; i < len(cells); i++ {
				assert.Equal(t, cells[i-1].Date.AddDays(1), cells[i].Date)
			}
		})
	}
}

func TestBuildMonthMatrix_ExactWeeksMonth(t *testing.T) {
	grid := testGridBuilder(t, time.Sunday)

	// Февраль 2026: начинается в воскресенье и занимает ровно 4 недели
	cells := grid.BuildMonthMatrix("2026-02-10")

	require.Len(t, cells, 28)
	assert.Equal(t, types.DateString("2026-02-01"), cells[0].Date)
	assert.Equal(t, types.DateString("2026-02-28"), cells[len(cells)-1].Date)
	for _, cell := range cells {
		assert.True(t, cell.IsCurrentPeriod)
	}
}

func TestBuildWeekRow(t *testing.T) {
	grid := testGridBuilder(t, time.Sunday)

	// 2025-03-12 - среда
	cells := grid.BuildWeekRow("2025-03-12")

	require.Len(t, cells, 7)
	assert.Equal(t, types.DateString("2025-03-09"), cells[0].Date)
	assert.Equal(t, types.DateString("2025-03-15"), cells[6].Date)
	for _, cell := range cells {
		assert.True(t, cell.IsCurrentPeriod)
	}
}

func TestBuildHourColumn(t *testing.T) {
	grid := testGridBuilder(t, time.Sunday)

	hours := grid.BuildHourColumn()

	require.Len(t, hours, 24)
	assert.Equal(t, types.TimeString("00:00"), hours[0])
	assert.Equal(t, types.TimeString("09:00"), hours[9])
	assert.Equal(t, types.TimeString("23:00"), hours[23])
}
