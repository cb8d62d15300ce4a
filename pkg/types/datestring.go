package types

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString календарная дата в формате "YYYY-MM-DD"
// Не содержит времени суток и таймзоны - это чистое значение "календарный день".
// Вся арифметика дней идёт через AddDays (календарный шаг, а не вычитание
// миллисекунд), поэтому переходы на летнее/зимнее время на неё не влияют
type DateString string

// NewDateString создает DateString из time.Time (берёт только год, месяц, день)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromDate создает DateString из компонентов даты
func NewDateStringFromDate(year int, month time.Month, day int) DateString {
	return NewDateString(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// IsZero возвращает true, если значение не задано
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет, что значение соответствует формату "YYYY-MM-DD"
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("invalid date string format: %q (expected YYYY-MM-DD)", string(d))
	}
	return nil
}

// Time возвращает дату как time.Time (полночь UTC)
// UTC здесь - нейтральный носитель календарных компонентов, а не таймзона бизнес-логики
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string format: %q", string(d))
	}
	return t, nil
}

// AddDays возвращает дату, сдвинутую на days календарных дней
// Невалидные значения возвращаются без изменений - валидация выполняется отдельно
func (d DateString) AddDays(days int) DateString {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return NewDateString(t.AddDate(0, 0, days))
}

// Weekday возвращает день недели для даты
func (d DateString) Weekday() time.Weekday {
	t, err := d.Time()
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

// Before возвращает true, если d раньше other
// Формат "YYYY-MM-DD" с ведущими нулями сортируется лексикографически
func (d DateString) Before(other DateString) bool {
	return d < other
}

// After возвращает true, если d позже other
func (d DateString) After(other DateString) bool {
	return d > other
}

// Equal возвращает true, если даты совпадают
func (d DateString) Equal(other DateString) bool {
	return d == other
}

// SameMonth возвращает true, если обе даты относятся к одному году и месяцу
func (d DateString) SameMonth(other DateString) bool {
	return len(d) >= 7 && len(other) >= 7 && d[:7] == other[:7]
}

func (d DateString) String() string {
	return string(d)
}
