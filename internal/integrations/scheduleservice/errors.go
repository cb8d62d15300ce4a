package scheduleservice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

var (
	// ErrWindowNotFound возвращается, когда окно доступности не найдено на бэкенде
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrValidationRejected возвращается, когда бэкенд отклонил payload как невалидный
	// Клиентская пре-валидация должна не пропускать такие данные до сети,
	// поэтому появление этой ошибки указывает на рассинхрон правил
	ErrValidationRejected = errors.New("schedule service rejected payload")

	// ErrBookingConflict маркер конфликта удаления с существующими бронированиями
	// Конкретные даты несёт *ConflictError
	ErrBookingConflict = errors.New("deletion conflicts with existing bookings")

	// ErrInternal возвращается при внутренних ошибках клиента (транспорт, таймаут)
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")
)

// ConflictError отказ бэкенда удалить диапазон из-за бронирований внутри него
// BookedDates - буквальный список конфликтующих дат, как их сообщил бэкенд;
// не ретраится автоматически
type ConflictError struct {
	BookedDates []types.DateString
}

func (e *ConflictError) Error() string {
	dates := make([]string, len(e.BookedDates))
	for i, d := range e.BookedDates {
		dates[i] = d.String()
	}
	return fmt.Sprintf("deletion conflicts with bookings on: %s", strings.Join(dates, ", "))
}

// Is позволяет классифицировать ошибку через errors.Is(err, ErrBookingConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}
