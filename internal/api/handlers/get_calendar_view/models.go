package get_calendar_view

import (
	getCalendarView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_view"
)

// CalendarViewResponse HTTP response model
type CalendarViewResponse struct {
	VendorID      int64      `json:"vendorId"`
	View          string     `json:"view"`
	ReferenceDate string     `json:"referenceDate"`
	Today         string     `json:"today"`
	Cells         []CellView `json:"cells"`
	Hours         []string   `json:"hours,omitempty"`
}

// CellView данные одной ячейки сетки
type CellView struct {
	Date            string           `json:"date"`
	IsCurrentPeriod bool             `json:"isCurrentPeriod"`
	IsToday         bool             `json:"isToday"`
	IsPast          bool             `json:"isPast"`
	HasCoverage     bool             `json:"hasCoverage"`
	Bookings        []CellBooking    `json:"bookings"`
	Windows         []CellWindow     `json:"windows"`
}

// CellBooking бронирование внутри ячейки
type CellBooking struct {
	ID          int64  `json:"id"`
	BookingTime string `json:"bookingTime"`
	Status      string `json:"status"`
}

// CellWindow окно доступности, покрывающее ячейку
type CellWindow struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarView.Response) *CalendarViewResponse {
	out := &CalendarViewResponse{
		VendorID:      resp.VendorID,
		View:          string(resp.View),
		ReferenceDate: resp.ReferenceDate.String(),
		Today:         resp.Today.String(),
		Cells:         make([]CellView, len(resp.Cells)),
	}

	for _, h := range resp.Hours {
		out.Hours = append(out.Hours, h.String())
	}

	for i, cell := range resp.Cells {
		view := CellView{
			Date:            cell.Date.String(),
			IsCurrentPeriod: cell.IsCurrentPeriod,
			IsToday:         cell.IsToday,
			IsPast:          cell.IsPast,
			HasCoverage:     cell.HasCoverage,
			Bookings:        make([]CellBooking, 0, len(cell.Bookings)),
			Windows:         make([]CellWindow, 0, len(cell.Windows)),
		}

		for _, b := range cell.Bookings {
			view.Bookings = append(view.Bookings, CellBooking{
				ID:          b.ID,
				BookingTime: b.BookingTime.String(),
				Status:      string(b.Status),
			})
		}

		for _, w := range cell.Windows {
			view.Windows = append(view.Windows, CellWindow{
				ID:        w.ID,
				StartDate: w.StartDate.String(),
				EndDate:   w.EndDate.String(),
				StartTime: w.StartTime.String(),
				EndTime:   w.EndTime.String(),
			})
		}

		out.Cells[i] = view
	}

	return out
}
