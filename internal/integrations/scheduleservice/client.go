package scheduleservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ScheduleService - авторитетным хранилищем
// бронирований и окон доступности
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ScheduleService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListBookings получает все бронирования вендора
func (c *Client) ListBookings(ctx context.Context, vendorID int64) ([]*domain.Booking, error) {
	url := fmt.Sprintf("%s/internal/vendors/%d/bookings", c.baseURL, vendorID)

	var models []bookingModel
	if err := c.doJSON(ctx, http.MethodGet, url, nil, http.StatusOK, &models); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(models))
	for i := range models {
		b, err := models[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// ListAvailability получает все окна доступности вендора
func (c *Client) ListAvailability(ctx context.Context, vendorID int64) ([]*domain.AvailabilityWindow, error) {
	url := fmt.Sprintf("%s/internal/vendors/%d/availability", c.baseURL, vendorID)

	var models []windowModel
	if err := c.doJSON(ctx, http.MethodGet, url, nil, http.StatusOK, &models); err != nil {
		return nil, err
	}

	windows := make([]*domain.AvailabilityWindow, 0, len(models))
	for i := range models {
		w, err := models[i].toDomain(vendorID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		windows = append(windows, w)
	}

	return windows, nil
}

// CreateAvailability создает окно доступности вендора
func (c *Client) CreateAvailability(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	url := fmt.Sprintf("%s/internal/vendors/%d/availability", c.baseURL, window.VendorID)

	var created windowModel
	if err := c.doJSON(ctx, http.MethodPost, url, windowPayloadFromDomain(window), http.StatusCreated, &created); err != nil {
		return nil, err
	}

	result, err := created.toDomain(window.VendorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return result, nil
}

// UpdateAvailability обновляет окно доступности целиком (полная замена кортежа дат/времён)
func (c *Client) UpdateAvailability(ctx context.Context, windowID int64, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	url := fmt.Sprintf("%s/internal/availability/%d", c.baseURL, windowID)

	var updated windowModel
	if err := c.doJSON(ctx, http.MethodPut, url, windowPayloadFromDomain(window), http.StatusOK, &updated); err != nil {
		return nil, err
	}

	result, err := updated.toDomain(window.VendorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return result, nil
}

// DeleteAvailability удаляет окно доступности целиком (deleteRange == nil)
// или вырезает из него поддиапазон дат [deleteRange.Start, deleteRange.End].
// При конфликте с бронированиями возвращает *ConflictError с датами конфликтов
func (c *Client) DeleteAvailability(ctx context.Context, windowID int64, deleteRange *DateRange) error {
	url := fmt.Sprintf("%s/internal/availability/%d", c.baseURL, windowID)

	var body interface{}
	if deleteRange != nil {
		body = deleteRangePayload{
			StartDate: deleteRange.Start.String(),
			EndDate:   deleteRange.End.String(),
		}
	}

	return c.doJSON(ctx, http.MethodDelete, url, body, http.StatusOK, nil)
}

// DateRange поддиапазон дат для частичного удаления окна
type DateRange struct {
	Start types.DateString
	End   types.DateString
}

// doJSON выполняет запрос с JSON-телом и декодирует ответ в out (если out != nil)
func (c *Client) doJSON(ctx context.Context, method, url string, body interface{}, wantStatus int, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case wantStatus:
		// Продолжаем обработку
	case http.StatusBadRequest:
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return fmt.Errorf("%w: %s", ErrValidationRejected, errResp.Message)
		}
		return ErrValidationRejected
	case http.StatusNotFound:
		return ErrWindowNotFound
	case http.StatusConflict:
		return c.decodeConflict(resp.Body)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// decodeConflict декодирует 409-ответ в ConflictError с буквальным списком дат
func (c *Client) decodeConflict(body io.Reader) error {
	var conflict conflictModel
	if err := json.NewDecoder(body).Decode(&conflict); err != nil {
		return fmt.Errorf("%w: failed to decode conflict response: %v", ErrInvalidResponse, err)
	}

	dates := make([]types.DateString, 0, len(conflict.BookedDates))
	for _, raw := range conflict.BookedDates {
		d, err := types.NewDateStringFromString(raw)
		if err != nil {
			return fmt.Errorf("%w: conflict response contains invalid date %q", ErrInvalidResponse, raw)
		}
		dates = append(dates, d)
	}

	return &ConflictError{BookedDates: dates}
}
