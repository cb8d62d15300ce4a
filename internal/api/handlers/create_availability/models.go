package create_availability

import (
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

// CreateWindowRequest HTTP request model
type CreateWindowRequest struct {
	StartDate string `json:"startDate"` // "2025-03-10"
	EndDate   string `json:"endDate"`   // "2025-03-20"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateWindowRequest) ToServiceRequest(vendorID int64) *models.SaveWindowRequest {
	return &models.SaveWindowRequest{
		VendorID:  vendorID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// ValidationErrorResponse тело ответа при нарушении правил валидации
type ValidationErrorResponse struct {
	Code       int      `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations"`
}
