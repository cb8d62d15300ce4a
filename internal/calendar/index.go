package calendar

import (
	"sort"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// BookingIndex бронирования, сгруппированные по календарной дате
// Перестраивается целиком при каждом изменении коллекции бронирований:
// O(n log n) на построение, O(1) на Lookup
type BookingIndex struct {
	byDate map[types.DateString][]*domain.Booking
}

// IndexByDate строит индекс бронирований по дате
// Внутри дня бронирования упорядочены по времени по возрастанию,
// порядок равных времён стабилен относительно входной коллекции
func IndexByDate(bookings []*domain.Booking) *BookingIndex {
	byDate := make(map[types.DateString][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byDate[b.BookingDate] = append(byDate[b.BookingDate], b)
	}

	for _, day := range byDate {
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].BookingTime.IsBefore(day[j].BookingTime)
		})
	}

	return &BookingIndex{byDate: byDate}
}

// Lookup возвращает бронирования на указанную дату
// Никогда не падает: для дат без бронирований возвращает пустой срез
func (idx *BookingIndex) Lookup(date types.DateString) []*domain.Booking {
	if idx == nil || idx.byDate == nil {
		return nil
	}
	return idx.byDate[date]
}
