package availability

import (
	"errors"
	"strings"
)

var (
	// ErrValidation возвращается при нарушении правил валидации
	// Конкретный список нарушений несёт *ValidationError
	ErrValidation = errors.New("availability validation failed")
)

// ValidationError ошибка валидации с полным перечнем нарушенных правил
// Блокирует отправку запроса целиком - до сети такие данные не доходят
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "availability validation failed: " + strings.Join(e.Violations, "; ")
}

// Is позволяет классифицировать ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}
