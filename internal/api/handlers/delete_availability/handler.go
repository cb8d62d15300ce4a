package delete_availability

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	resolver "github.com/m04kA/SMC-CalendarService/internal/availability"
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/scheduleservice"
	availabilityService "github.com/m04kA/SMC-CalendarService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVendorID    = "некорректный идентификатор вендора"
	msgInvalidWindowID    = "некорректный идентификатор окна доступности"
	msgWindowNotFound     = "окно доступности не найдено"
	msgValidationFailed   = "запрос на удаление не прошёл валидацию"
	msgBookedDates        = "в удаляемом диапазоне есть бронирования"
	msgOperationInFlight  = "операция уже выполняется, дождитесь завершения"
	msgBackendFailure     = "сервис расписаний временно недоступен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/vendors/{vendorId}/availability/{windowId}
// Тело опционально: {} удаляет окно целиком, {startDate, endDate} вырезает диапазон
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vendorID, err := strconv.ParseInt(vars["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("DELETE /vendors/{vendorId}/availability/{windowId} - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil || windowID <= 0 {
		h.logger.Warn("DELETE /vendors/%d/availability/{windowId} - Invalid window id: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	var req DeleteWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("DELETE /vendors/%d/availability/%d - Invalid request body: %v", vendorID, windowID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Remove(r.Context(), windowID, req.ToServiceRequest(vendorID))
	if err != nil {
		var validationErr *resolver.ValidationError
		var conflictErr *scheduleservice.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			// Конфликт не ретраится: даты отдаются клиенту буквально
			h.logger.Warn("DELETE /vendors/%d/availability/%d - Booked dates in range: %v",
				vendorID, windowID, conflictErr.BookedDates)
			dates := make([]string, 0, len(conflictErr.BookedDates))
			for _, d := range conflictErr.BookedDates {
				dates = append(dates, d.String())
			}
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Code:        http.StatusConflict,
				Message:     msgBookedDates,
				BookedDates: dates,
			})

		case errors.As(err, &validationErr):
			h.logger.Warn("DELETE /vendors/%d/availability/%d - Validation failed: %v", vendorID, windowID, err)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Code:       http.StatusBadRequest,
				Message:    msgValidationFailed,
				Violations: validationErr.Violations,
			})

		case errors.Is(err, availabilityService.ErrWindowNotFound):
			h.logger.Warn("DELETE /vendors/%d/availability/%d - Window not found", vendorID, windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, availabilityService.ErrOperationInProgress):
			h.logger.Warn("DELETE /vendors/%d/availability/%d - Duplicate submission", vendorID, windowID)
			handlers.RespondConflict(w, msgOperationInFlight)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("DELETE /vendors/%d/availability/%d - Invalid input: %v", vendorID, windowID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("DELETE /vendors/%d/availability/%d - Failed to delete window: %v", vendorID, windowID, err)
			handlers.RespondBadGateway(w, msgBackendFailure)
		}
		return
	}

	h.logger.Info("DELETE /vendors/%d/availability/%d - Window deleted", vendorID, windowID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
