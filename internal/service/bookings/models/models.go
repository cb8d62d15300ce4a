package models

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модели

// GetVendorBookingsRequest запрос на получение бронирований вендора
type GetVendorBookingsRequest struct {
	VendorID int64   `json:"vendorId"`
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	VendorID    int64  `json:"vendorId"`
	BookingDate string `json:"bookingDate"` // "2025-03-14"
	BookingTime string `json:"bookingTime"` // "10:00"
	Status      string `json:"status"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		VendorID:    b.VendorID,
		BookingDate: b.BookingDate.String(),
		BookingTime: b.BookingTime.String(),
		Status:      string(b.Status),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
