package get_calendar_view

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getCalendarView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_view"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

const (
	msgInvalidVendorID = "некорректный идентификатор вендора"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidView     = "некорректный режим просмотра, ожидается month|week|day"
	msgBackendFailure  = "сервис расписаний временно недоступен"
)

type Handler struct {
	useCase GetCalendarViewUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/calendar?date=YYYY-MM-DD&view=month|week|day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := strconv.ParseInt(mux.Vars(r)["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("GET /vendors/{vendorId}/calendar - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	date, err := types.NewDateStringFromString(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /vendors/%d/calendar - Invalid date: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, ok := domain.ParseCalendarView(r.URL.Query().Get("view"))
	if !ok {
		h.logger.Warn("GET /vendors/%d/calendar - Invalid view: %q", vendorID, r.URL.Query().Get("view"))
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendarView.Request{
		VendorID: vendorID,
		State: domain.ViewState{
			SelectedDate: date,
			View:         view,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarView.ErrInvalidInput):
			h.logger.Warn("GET /vendors/%d/calendar - Invalid input: %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /vendors/%d/calendar - Failed to build view: %v", vendorID, err)
			handlers.RespondBadGateway(w, msgBackendFailure)
		}
		return
	}

	h.logger.Info("GET /vendors/%d/calendar - View built: view=%s, cells=%d",
		vendorID, result.View, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
