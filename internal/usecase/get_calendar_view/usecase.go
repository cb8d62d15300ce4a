package get_calendar_view

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/availability"
	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case построения календарного представления вендора:
// сетка месяц/неделя/день с бронированиями и покрытием доступностью по ячейкам
type UseCase struct {
	client   ScheduleServiceClient
	anchor   *calendar.Anchor
	grid     *calendar.GridBuilder
	resolver *availability.Resolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client ScheduleServiceClient,
	anchor *calendar.Anchor,
	grid *calendar.GridBuilder,
	resolver *availability.Resolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:   client,
		anchor:   anchor,
		grid:     grid,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case построения календарного представления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarView: vendor=%d, date=%s, view=%s",
		req.VendorID, req.State.SelectedDate, req.State.View)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarView: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирования вендора
	bookings, err := uc.client.ListBookings(ctx, req.VendorID)
	if err != nil {
		uc.logger.Error("GetCalendarView: failed to list bookings for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Получаем окна доступности вендора
	windows, err := uc.client.ListAvailability(ctx, req.VendorID)
	if err != nil {
		uc.logger.Error("GetCalendarView: failed to list availability for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
	}

	// 4. Строим сетку под выбранный режим
	cells := uc.buildGrid(req.State)

	// 5. Индексируем бронирования по датам
	index := calendar.IndexByDate(bookings)

	// 6. Наполняем ячейки данными рендеринга
	today := uc.anchor.Today()
	dayCells := make([]DayCell, len(cells))
	for i, cell := range cells {
		dayCells[i] = DayCell{
			Date:            cell.Date,
			IsCurrentPeriod: cell.IsCurrentPeriod,
			IsToday:         cell.Date.Equal(today),
			IsPast:          uc.anchor.IsPast(cell.Date),
			HasCoverage:     uc.resolver.HasCoverage(cell.Date, windows),
			Bookings:        index.Lookup(cell.Date),
			Windows:         uc.resolver.Overlapping(cell.Date, windows),
		}
	}

	resp := &Response{
		VendorID:      req.VendorID,
		View:          req.State.View,
		ReferenceDate: req.State.SelectedDate,
		Today:         today,
		Cells:         dayCells,
	}

	// 7. Для time-grid раскладок добавляем часовую колонку
	if req.State.View == domain.ViewWeek || req.State.View == domain.ViewDay {
		resp.Hours = uc.grid.BuildHourColumn()
	}

	uc.logger.Info("GetCalendarView: built %d cells for vendor=%d, view=%s",
		len(dayCells), req.VendorID, req.State.View)

	return resp, nil
}

// buildGrid строит ячейки сетки под режим просмотра
func (uc *UseCase) buildGrid(state domain.ViewState) []calendar.Cell {
	switch state.View {
	case domain.ViewMonth:
		return uc.grid.BuildMonthMatrix(state.SelectedDate)
	case domain.ViewWeek:
		return uc.grid.BuildWeekRow(state.SelectedDate)
	default:
		return []calendar.Cell{{Date: state.SelectedDate, IsCurrentPeriod: true}}
	}
}
