package update_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	resolver "github.com/m04kA/SMC-CalendarService/internal/availability"
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	availabilityService "github.com/m04kA/SMC-CalendarService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVendorID    = "некорректный идентификатор вендора"
	msgInvalidWindowID    = "некорректный идентификатор окна доступности"
	msgWindowNotFound     = "окно доступности не найдено"
	msgValidationFailed   = "данные окна доступности не прошли валидацию"
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

// Handle PUT /api/v1/vendors/{vendorId}/availability/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vendorID, err := strconv.ParseInt(vars["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("PUT /vendors/{vendorId}/availability/{windowId} - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil || windowID <= 0 {
		h.logger.Warn("PUT /vendors/%d/availability/{windowId} - Invalid window id: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	var req UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vendors/%d/availability/%d - Invalid request body: %v", vendorID, windowID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), windowID, req.ToServiceRequest(vendorID))
	if err != nil {
		var validationErr *resolver.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /vendors/%d/availability/%d - Validation failed: %v", vendorID, windowID, err)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Code:       http.StatusBadRequest,
				Message:    msgValidationFailed,
				Violations: validationErr.Violations,
			})

		case errors.Is(err, availabilityService.ErrWindowNotFound):
			h.logger.Warn("PUT /vendors/%d/availability/%d - Window not found", vendorID, windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, availabilityService.ErrOperationInProgress):
			h.logger.Warn("PUT /vendors/%d/availability/%d - Duplicate submission", vendorID, windowID)
			handlers.RespondConflict(w, msgOperationInFlight)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /vendors/%d/availability/%d - Invalid input: %v", vendorID, windowID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /vendors/%d/availability/%d - Failed to update window: %v", vendorID, windowID, err)
			handlers.RespondBadGateway(w, msgBackendFailure)
		}
		return
	}

	h.logger.Info("PUT /vendors/%d/availability/%d - Window updated", vendorID, windowID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
