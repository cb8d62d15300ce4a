package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "09:30"},
		{name: "valid midnight", value: "00:00"},
		{name: "valid end of day", value: "23:59"},
		{name: "missing leading zero", value: "9:30", wantErr: true},
		{name: "out of range hour", value: "24:00", wantErr: true},
		{name: "out of range minute", value: "10:60", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeStringFromString(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = ts.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	// Выход за границы суток - ошибка
	_, err = ts.AddMinutes(14 * 60)
	assert.Error(t, err)

	_, err = ts.AddMinutes(-11 * 60)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("10:30").IsAfter("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestDateString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "2025-03-15"},
		{name: "leap day", value: "2024-02-29"},
		{name: "not a leap day", value: "2025-02-29", wantErr: true},
		{name: "wrong separator", value: "2025/03/15", wantErr: true},
		{name: "no leading zeros", value: "2025-3-5", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateStringFromString(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateString_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date DateString
		days int
		want DateString
	}{
		{name: "simple step", date: "2025-03-10", days: 1, want: "2025-03-11"},
		{name: "backward step", date: "2025-03-10", days: -1, want: "2025-03-09"},
		{name: "month boundary", date: "2025-03-31", days: 1, want: "2025-04-01"},
		{name: "year boundary", date: "2025-12-31", days: 1, want: "2026-01-01"},
		{name: "leap february", date: "2024-02-28", days: 1, want: "2024-02-29"},
		{name: "across dst spring forward", date: "2025-03-08", days: 2, want: "2025-03-10"},
		{name: "big step", date: "2025-01-01", days: 365, want: "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AddDays(tt.days))
		})
	}
}

func TestDateString_Ordering(t *testing.T) {
	assert.True(t, DateString("2025-03-10").Before("2025-03-11"))
	assert.True(t, DateString("2025-12-01").Before("2026-01-01"))
	assert.True(t, DateString("2025-03-11").After("2025-03-10"))
	assert.True(t, DateString("2025-03-10").Equal("2025-03-10"))
	assert.False(t, DateString("2025-03-10").Before("2025-03-10"))
}

func TestDateString_SameMonth(t *testing.T) {
	assert.True(t, DateString("2025-03-01").SameMonth("2025-03-31"))
	assert.False(t, DateString("2025-03-31").SameMonth("2025-04-01"))
	assert.False(t, DateString("2024-03-15").SameMonth("2025-03-15"))
}

func TestDateString_Weekday(t *testing.T) {
	assert.Equal(t, time.Saturday, DateString("2025-03-01").Weekday())
	assert.Equal(t, time.Sunday, DateString("2025-02-23").Weekday())
}
