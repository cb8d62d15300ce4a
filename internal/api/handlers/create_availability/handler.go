package create_availability

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

// Handle POST /api/v1/vendors/{vendorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := strconv.ParseInt(mux.Vars(r)["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("POST /vendors/{vendorId}/availability - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	var req CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vendors/%d/availability - Invalid request body: %v", vendorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(vendorID))
	if err != nil {
		var validationErr *resolver.ValidationError
		switch {
		case errors.As(err, &validationErr):
			// Нарушения отдаются полным списком - клиент показывает их все сразу
			h.logger.Warn("POST /vendors/%d/availability - Validation failed: %v", vendorID, err)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Code:       http.StatusBadRequest,
				Message:    msgValidationFailed,
				Violations: validationErr.Violations,
			})

		case errors.Is(err, availabilityService.ErrOperationInProgress):
			h.logger.Warn("POST /vendors/%d/availability - Duplicate submission", vendorID)
			handlers.RespondConflict(w, msgOperationInFlight)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("POST /vendors/%d/availability - Invalid input: %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /vendors/%d/availability - Failed to create window: %v", vendorID, err)
			handlers.RespondBadGateway(w, msgBackendFailure)
		}
		return
	}

	h.logger.Info("POST /vendors/%d/availability - Window created: id=%d", vendorID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
