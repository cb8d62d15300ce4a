package availability

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Resolver чистое интервальное ядро движка доступности:
// запросы пересечений, валидация ввода и планирование вырезания диапазонов.
// Не выполняет никакого I/O - отказ бэкенда (конфликт с бронированиями)
// не является режимом ошибки Resolver и обрабатывается слоем выше
type Resolver struct {
	anchor *calendar.Anchor
}

// NewResolver создает новый Resolver
func NewResolver(anchor *calendar.Anchor) *Resolver {
	return &Resolver{anchor: anchor}
}

// Overlapping возвращает все окна, чей диапазон дат содержит date
// Дубликаты и перекрытия окон одного вендора допустимы, поэтому
// результат - список, а не единственное окно
func (r *Resolver) Overlapping(date types.DateString, windows []*domain.AvailabilityWindow) []*domain.AvailabilityWindow {
	var result []*domain.AvailabilityWindow
	for _, w := range windows {
		if w.Covers(date) {
			result = append(result, w)
		}
	}
	return result
}

// HasCoverage возвращает true, если хотя бы одно окно покрывает date
func (r *Resolver) HasCoverage(date types.DateString, windows []*domain.AvailabilityWindow) bool {
	for _, w := range windows {
		if w.Covers(date) {
			return true
		}
	}
	return false
}

// ValidateCreateOrUpdate валидирует ввод и нормализует его в доменное окно
// При нарушениях возвращает *ValidationError с полным перечнем нарушенных
// правил - такие данные блокируются до отправки в сеть
func (r *Resolver) ValidateCreateOrUpdate(input WindowInput) (*domain.AvailabilityWindow, error) {
	var violations []string

	startDate, err := requireDate("startDate", input.StartDate, &violations)
	endDate, err2 := requireDate("endDate", input.EndDate, &violations)
	startTime := requireTime("startTime", input.StartTime, &violations)
	endTime := requireTime("endTime", input.EndTime, &violations)

	if err == nil && err2 == nil {
		if endDate.Before(startDate) {
			violations = append(violations, "endDate must not be before startDate")
		}
		if r.anchor.IsPast(startDate) {
			violations = append(violations, fmt.Sprintf("startDate %s is in the past", startDate))
		}
		if r.anchor.IsPast(endDate) {
			violations = append(violations, fmt.Sprintf("endDate %s is in the past", endDate))
		}
	}

	// Порядок endTime относительно startTime намеренно не проверяется:
	// допустимость "ночных" окон не специфицирована
	if len(violations) > 0 {
		return nil, newValidationError(violations)
	}

	return &domain.AvailabilityWindow{
		VendorID:  input.VendorID,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// PlanDeletion вычисляет ожидаемый результат удаления окна
//
// Режим DeleteAll: окно удаляется целиком, остатков нет.
//
// Режим DeleteRange с интервалом [C, D] внутри окна [A, B]:
// левый остаток [A, C-1день] сохраняется, если C > A;
// правый остаток [D+1день, B] сохраняется, если D < B.
// Каждый остаток наследует исходные StartTime/EndTime.
// Если оба остатка пусты, операция вырождается в DeleteAll.
//
// Шаг C-1/D+1 - календарный (AddDays), что сохраняет корректность
// на границах перевода часов
func (r *Resolver) PlanDeletion(window *domain.AvailabilityWindow, req DeletionRequest) (*DeletionPlan, error) {
	switch req.Mode {
	case DeleteAll:
		return &DeletionPlan{}, nil
	case DeleteRange:
		// Продолжаем ниже
	default:
		return nil, newValidationError([]string{fmt.Sprintf("unknown deletion mode: %q", req.Mode)})
	}

	var violations []string

	if req.Start.IsZero() || req.Start.Validate() != nil {
		violations = append(violations, "deletion range start is required in YYYY-MM-DD format")
	}
	if req.End.IsZero() || req.End.Validate() != nil {
		violations = append(violations, "deletion range end is required in YYYY-MM-DD format")
	}
	if len(violations) > 0 {
		return nil, newValidationError(violations)
	}

	if req.End.Before(req.Start) {
		violations = append(violations, "deletion range end must not be before its start")
	}
	if !window.ContainsRange(req.Start, req.End) {
		violations = append(violations, fmt.Sprintf(
			"deletion range [%s, %s] must lie within window bounds [%s, %s]",
			req.Start, req.End, window.StartDate, window.EndDate))
	}
	if r.anchor.IsPast(req.Start) {
		violations = append(violations, fmt.Sprintf("deletion range start %s is in the past", req.Start))
	}
	if r.anchor.IsPast(req.End) {
		violations = append(violations, fmt.Sprintf("deletion range end %s is in the past", req.End))
	}
	if len(violations) > 0 {
		return nil, newValidationError(violations)
	}

	plan := &DeletionPlan{}

	if req.Start.After(window.StartDate) {
		plan.Remainders = append(plan.Remainders, domain.AvailabilityWindow{
			VendorID:  window.VendorID,
			StartDate: window.StartDate,
			EndDate:   req.Start.AddDays(-1),
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		})
	}

	if req.End.Before(window.EndDate) {
		plan.Remainders = append(plan.Remainders, domain.AvailabilityWindow{
			VendorID:  window.VendorID,
			StartDate: req.End.AddDays(1),
			EndDate:   window.EndDate,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		})
	}

	return plan, nil
}

func requireDate(field, value string, violations *[]string) (types.DateString, error) {
	if value == "" {
		*violations = append(*violations, field+" is required")
		return "", fmt.Errorf("%s is required", field)
	}
	d, err := types.NewDateStringFromString(value)
	if err != nil {
		*violations = append(*violations, field+" must be in YYYY-MM-DD format")
		return "", err
	}
	return d, nil
}

func requireTime(field, value string, violations *[]string) types.TimeString {
	if value == "" {
		*violations = append(*violations, field+" is required")
		return ""
	}
	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		*violations = append(*violations, field+" must be in HH:MM format")
		return ""
	}
	return t
}
