package get_vendor_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-CalendarService/internal/service/bookings"
	"github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

const (
	msgInvalidVendorID = "некорректный идентификатор вендора"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgBackendFailure  = "сервис расписаний временно недоступен"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := strconv.ParseInt(mux.Vars(r)["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("GET /vendors/{vendorId}/bookings - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	req := &models.GetVendorBookingsRequest{VendorID: vendorID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetVendorBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /vendors/%d/bookings - Invalid input: %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /vendors/%d/bookings - Failed to list bookings: %v", vendorID, err)
			handlers.RespondBadGateway(w, msgBackendFailure)
		}
		return
	}

	h.logger.Info("GET /vendors/%d/bookings - Listed %d bookings", vendorID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
