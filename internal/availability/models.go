package availability

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// WindowInput сырой пользовательский ввод для создания/обновления окна доступности
// Обновление - это всегда полная замена кортежа дат/времён, частичного patch нет
type WindowInput struct {
	VendorID  int64
	StartDate string // "2025-03-10"
	EndDate   string // "2025-03-20"
	StartTime string // "09:00"
	EndTime   string // "18:00"
}

// DeletionMode режим удаления окна доступности
type DeletionMode string

const (
	// DeleteAll удаляет окно целиком
	DeleteAll DeletionMode = "all"
	// DeleteRange вырезает из окна поддиапазон дат
	DeleteRange DeletionMode = "range"
)

// DeletionRequest запрос на удаление окна доступности
// Start/End используются только в режиме DeleteRange и должны лежать
// внутри границ целевого окна
type DeletionRequest struct {
	Mode  DeletionMode
	Start types.DateString
	End   types.DateString
}

// DeletionPlan ожидаемый результат удаления: остатки исходного окна
// План консультативный - авторитетный результат вырезания принадлежит бэкенду,
// клиент после успешного удаления всегда перечитывает коллекцию
type DeletionPlan struct {
	// Remainders выжившие части окна (0, 1 или 2), каждая наследует
	// исходные StartTime/EndTime. ID у остатков нет - их назначает бэкенд
	Remainders []domain.AvailabilityWindow
}

// DeletesEntireWindow возвращает true, если после удаления от окна ничего не останется
func (p *DeletionPlan) DeletesEntireWindow() bool {
	return len(p.Remainders) == 0
}
