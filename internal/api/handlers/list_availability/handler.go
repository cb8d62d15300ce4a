package list_availability

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

const (
	msgInvalidVendorID = "некорректный идентификатор вендора"
	msgBackendFailure  = "сервис расписаний временно недоступен"
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

// Handle GET /api/v1/vendors/{vendorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := strconv.ParseInt(mux.Vars(r)["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("GET /vendors/{vendorId}/availability - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	result, err := h.service.List(r.Context(), vendorID)
	if err != nil {
		h.logger.Error("GET /vendors/%d/availability - Failed to list windows: %v", vendorID, err)
		handlers.RespondBadGateway(w, msgBackendFailure)
		return
	}

	h.logger.Info("GET /vendors/%d/availability - Listed %d windows", vendorID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
