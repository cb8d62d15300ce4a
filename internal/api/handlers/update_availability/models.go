package update_availability

import (
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

// UpdateWindowRequest HTTP request model
// Обновление - полная замена кортежа дат/времён окна, частичного patch нет
type UpdateWindowRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWindowRequest) ToServiceRequest(vendorID int64) *models.SaveWindowRequest {
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
