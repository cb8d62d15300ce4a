package models

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модели

// SaveWindowRequest запрос на создание/обновление окна доступности
// Обновление - всегда полная замена кортежа дат/времён, частичного patch нет
type SaveWindowRequest struct {
	VendorID  int64  `json:"vendorId"`
	StartDate string `json:"startDate"` // "2025-03-10"
	EndDate   string `json:"endDate"`   // "2025-03-20"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// DeleteWindowRequest запрос на удаление окна доступности
// При пустых StartDate/EndDate окно удаляется целиком,
// иначе из него вырезается диапазон [StartDate, EndDate]
type DeleteWindowRequest struct {
	VendorID  int64  `json:"vendorId"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID        int64  `json:"id"`
	VendorID  int64  `json:"vendorId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WindowListResponse ответ со списком окон доступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:        w.ID,
		VendorID:  w.VendorID,
		StartDate: w.StartDate.String(),
		EndDate:   w.EndDate.String(),
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		resp.Windows = append(resp.Windows, *FromDomainWindow(w))
	}
	return resp
}
