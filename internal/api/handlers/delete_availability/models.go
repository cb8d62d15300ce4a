package delete_availability

import (
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

// DeleteWindowRequest HTTP request model
// Пустое тело (или пустые поля) означает удаление окна целиком,
// заполненные даты - вырезание диапазона [startDate, endDate]
type DeleteWindowRequest struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *DeleteWindowRequest) ToServiceRequest(vendorID int64) *models.DeleteWindowRequest {
	return &models.DeleteWindowRequest{
		VendorID:  vendorID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// ValidationErrorResponse тело ответа при нарушении правил валидации
type ValidationErrorResponse struct {
	Code       int      `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations"`
}

// ConflictResponse тело 409-ответа: удаляемый диапазон содержит бронирования
// Список дат отдается буквально, как его сообщил бэкенд
type ConflictResponse struct {
	Code        int      `json:"code"`
	Message     string   `json:"message"`
	BookedDates []string `json:"bookedDates"`
}
