package bookings

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/bookings/models"
)

// Service сервис чтения бронирований вендора
// Бронирования принадлежат внешней booking-подсистеме и здесь только читаются
type Service struct {
	client ScheduleServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client ScheduleServiceClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetVendorBookings получает бронирования вендора, опционально фильтруя по статусу
// Результат упорядочен по дате, внутри дня - по времени по возрастанию
func (s *Service) GetVendorBookings(ctx context.Context, req *models.GetVendorBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetVendorBookings: fetching bookings for vendor=%d, status=%v", req.VendorID, req.Status)

	if req.VendorID <= 0 {
		return nil, fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	var statusFilter *domain.BookingStatus
	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetVendorBookings: invalid status=%s for vendor=%d", *req.Status, req.VendorID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		statusFilter = &status
	}

	bookings, err := s.client.ListBookings(ctx, req.VendorID)
	if err != nil {
		s.logger.Error("GetVendorBookings: schedule service error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: GetVendorBookings - schedule service error: %v", ErrInternal, err)
	}

	if statusFilter != nil {
		filtered := bookings[:0]
		for _, b := range bookings {
			if b.Status == *statusFilter {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].BookingDate.Equal(bookings[j].BookingDate) {
			return bookings[i].BookingDate.Before(bookings[j].BookingDate)
		}
		return bookings[i].BookingTime.IsBefore(bookings[j].BookingTime)
	})

	s.logger.Info("GetVendorBookings: successfully fetched %d bookings for vendor=%d", len(bookings), req.VendorID)
	return models.FromDomainBookingList(bookings), nil
}
