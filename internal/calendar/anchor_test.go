package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func fixedAnchor(t *testing.T, timezone string, weekStart time.Weekday, now time.Time) *Anchor {
	t.Helper()
	anchor, err := NewAnchorAt(timezone, weekStart, func() time.Time { return now })
	require.NoError(t, err)
	return anchor
}

func TestNewAnchor_InvalidTimezone(t *testing.T) {
	_, err := NewAnchor("Not/AZone", time.Sunday)
	assert.Error(t, err)
}

func TestAnchor_TodayUsesReferenceTimezone(t *testing.T) {
	// 23:30 UTC 14 марта = уже 15 марта в Москве (UTC+3)
	now := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)

	moscow := fixedAnchor(t, "Europe/Moscow", time.Sunday, now)
	utc := fixedAnchor(t, "UTC", time.Sunday, now)

	assert.Equal(t, types.DateString("2025-03-15"), moscow.Today())
	assert.Equal(t, types.DateString("2025-03-14"), utc.Today())
}

func TestAnchor_IsPastAndClampNotPast(t *testing.T) {
	anchor := fixedAnchor(t, "UTC", time.Sunday, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		date      types.DateString
		isPast    bool
		clampedTo types.DateString
	}{
		{name: "well in the past", date: "2025-03-01", isPast: true, clampedTo: "2025-03-15"},
		{name: "yesterday", date: "2025-03-14", isPast: true, clampedTo: "2025-03-15"},
		{name: "today", date: "2025-03-15", isPast: false, clampedTo: "2025-03-15"},
		{name: "tomorrow", date: "2025-03-16", isPast: false, clampedTo: "2025-03-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isPast, anchor.IsPast(tt.date))
			assert.Equal(t, tt.clampedTo, anchor.ClampNotPast(tt.date))
		})
	}
}

func TestAnchor_MonthBounds(t *testing.T) {
	anchor := fixedAnchor(t, "UTC", time.Sunday, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		date  types.DateString
		start types.DateString
		end   types.DateString
	}{
		{date: "2025-03-15", start: "2025-03-01", end: "2025-03-31"},
		{date: "2025-02-10", start: "2025-02-01", end: "2025-02-28"},
		{date: "2024-02-10", start: "2024-02-01", end: "2024-02-29"},
		{date: "2025-12-31", start: "2025-12-01", end: "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(string(tt.date), func(t *testing.T) {
			assert.Equal(t, tt.start, anchor.StartOfMonth(tt.date))
			assert.Equal(t, tt.end, anchor.EndOfMonth(tt.date))
		})
	}
}

func TestAnchor_WeekBounds(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	// 2025-03-12 - среда
	sundayStart := fixedAnchor(t, "UTC", time.Sunday, now)
	assert.Equal(t, types.DateString("2025-03-09"), sundayStart.StartOfWeek("2025-03-12"))
	assert.Equal(t, types.DateString("2025-03-15"), sundayStart.EndOfWeek("2025-03-12"))

	mondayStart := fixedAnchor(t, "UTC", time.Monday, now)
	assert.Equal(t, types.DateString("2025-03-10"), mondayStart.StartOfWeek("2025-03-12"))
	assert.Equal(t, types.DateString("2025-03-16"), mondayStart.EndOfWeek("2025-03-12"))

	// Дата, совпадающая с началом недели, остаётся на месте
	assert.Equal(t, types.DateString("2025-03-09"), sundayStart.StartOfWeek("2025-03-09"))
	assert.Equal(t, types.DateString("2025-03-10"), mondayStart.StartOfWeek("2025-03-10"))
}

func TestParseWeekStart(t *testing.T) {
	day, err := ParseWeekStart("sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	day, err = ParseWeekStart("Monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	_, err = ParseWeekStart("someday")
	assert.Error(t, err)
}
