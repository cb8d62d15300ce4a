package get_calendar_view

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	if req.State.SelectedDate.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.State.SelectedDate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.State.View == "" {
		return fmt.Errorf("%w: view is required", ErrInvalidInput)
	}
	if _, ok := domain.ParseCalendarView(string(req.State.View)); !ok {
		return fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.State.View)
	}

	return nil
}
