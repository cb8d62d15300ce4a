package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	resolver "github.com/m04kA/SMC-CalendarService/internal/availability"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Service стор окон доступности поверх ScheduleService
//
// Бэкенд авторитетен: после каждой успешной мутации коллекция перечитывается
// целиком, локально вычисленный результат вырезания никогда не применяется
// как финальная истина. Внутрисессионный кэш существует только для чтения
// и перезаписывается последним завершившимся refetch (last-write-wins)
type Service struct {
	client   ScheduleServiceClient
	resolver *resolver.Resolver
	logger   Logger

	// Кэш окон текущей сессии по вендорам
	mu      sync.Mutex
	windows map[int64][]*domain.AvailabilityWindow

	// Busy-флаги мутаций: каждая мутирующая операция блокирует повторную
	// отправку самой себя, пока предыдущая не завершилась
	createBusy atomic.Bool
	updateBusy atomic.Bool
	removeBusy atomic.Bool
}

// NewService создает новый экземпляр стора окон доступности
func NewService(client ScheduleServiceClient, res *resolver.Resolver, logger Logger) *Service {
	return &Service{
		client:   client,
		resolver: res,
		logger:   logger,
		windows:  make(map[int64][]*domain.AvailabilityWindow),
	}
}

// List перечитывает окна доступности вендора из ScheduleService
// и обновляет внутрисессионный кэш
func (s *Service) List(ctx context.Context, vendorID int64) (*models.WindowListResponse, error) {
	s.logger.Info("List: fetching availability for vendor=%d", vendorID)

	windows, err := s.refetch(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: fetched %d windows for vendor=%d", len(windows), vendorID)
	return models.FromDomainWindowList(windows), nil
}

// Create валидирует ввод через Resolver и создает окно доступности
// Невалидный ввод блокируется до сети. После успеха коллекция перечитывается
func (s *Service) Create(ctx context.Context, req *models.SaveWindowRequest) (*models.WindowResponse, error) {
	if !s.createBusy.CompareAndSwap(false, true) {
		s.logger.Warn("Create: duplicate submission rejected for vendor=%d", req.VendorID)
		return nil, ErrOperationInProgress
	}
	defer s.createBusy.Store(false)

	s.logger.Info("Create: creating window for vendor=%d, range=[%s, %s]",
		req.VendorID, req.StartDate, req.EndDate)

	window, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreateAvailability(ctx, window)
	if err != nil {
		s.logger.Error("Create: schedule service error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: Create - schedule service error: %v", ErrInternal, err)
	}

	// Истина после мутации - свежий list, а не локальное состояние
	if _, err := s.refetch(ctx, req.VendorID); err != nil {
		s.logger.Warn("Create: refetch after create failed for vendor=%d: %v", req.VendorID, err)
	}

	s.logger.Info("Create: window id=%d created for vendor=%d", created.ID, req.VendorID)
	return models.FromDomainWindow(created), nil
}

// Update валидирует ввод через Resolver и заменяет окно доступности целиком
// После успеха коллекция перечитывается
func (s *Service) Update(ctx context.Context, windowID int64, req *models.SaveWindowRequest) (*models.WindowResponse, error) {
	if !s.updateBusy.CompareAndSwap(false, true) {
		s.logger.Warn("Update: duplicate submission rejected for window=%d", windowID)
		return nil, ErrOperationInProgress
	}
	defer s.updateBusy.Store(false)

	s.logger.Info("Update: updating window id=%d for vendor=%d, range=[%s, %s]",
		windowID, req.VendorID, req.StartDate, req.EndDate)

	window, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateAvailability(ctx, windowID, window)
	if err != nil {
		if errors.Is(err, scheduleservice.ErrWindowNotFound) {
			s.logger.Warn("Update: window id=%d not found", windowID)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("Update: schedule service error for window=%d: %v", windowID, err)
		return nil, fmt.Errorf("%w: Update - schedule service error: %v", ErrInternal, err)
	}

	if _, err := s.refetch(ctx, req.VendorID); err != nil {
		s.logger.Warn("Update: refetch after update failed for vendor=%d: %v", req.VendorID, err)
	}

	s.logger.Info("Update: window id=%d updated for vendor=%d", windowID, req.VendorID)
	return models.FromDomainWindow(updated), nil
}

// Remove удаляет окно целиком или вырезает из него диапазон дат
//
// Перед отправкой запрос проходит консультативную пре-валидацию через
// Resolver.PlanDeletion (границы диапазона, прошлые даты). Отказ бэкенда
// из-за бронирований внутри диапазона возвращается как
// *scheduleservice.ConflictError с буквальным списком дат - без каких-либо
// локальных изменений. После успеха коллекция перечитывается: авторитетный
// результат вырезания (0, 1 или 2 окна) принадлежит бэкенду
func (s *Service) Remove(ctx context.Context, windowID int64, req *models.DeleteWindowRequest) error {
	if !s.removeBusy.CompareAndSwap(false, true) {
		s.logger.Warn("Remove: duplicate submission rejected for window=%d", windowID)
		return ErrOperationInProgress
	}
	defer s.removeBusy.Store(false)

	delReq, err := toDeletionRequest(req)
	if err != nil {
		s.logger.Warn("Remove: invalid request for window=%d: %v", windowID, err)
		return err
	}

	s.logger.Info("Remove: deleting window id=%d for vendor=%d, mode=%s",
		windowID, req.VendorID, delReq.Mode)

	window, err := s.findWindow(ctx, req.VendorID, windowID)
	if err != nil {
		return err
	}

	plan, err := s.resolver.PlanDeletion(window, delReq)
	if err != nil {
		s.logger.Warn("Remove: deletion plan rejected for window=%d: %v", windowID, err)
		return err
	}

	var deleteRange *scheduleservice.DateRange
	if delReq.Mode == resolver.DeleteRange && !plan.DeletesEntireWindow() {
		deleteRange = &scheduleservice.DateRange{Start: delReq.Start, End: delReq.End}
	}

	if err := s.client.DeleteAvailability(ctx, windowID, deleteRange); err != nil {
		var conflict *scheduleservice.ConflictError
		if errors.As(err, &conflict) {
			// Конфликт не ретраится и не меняет локальное состояние:
			// даты отдаются вызывающему буквально, как их сообщил бэкенд
			s.logger.Warn("Remove: deletion of window=%d conflicts with bookings on %v",
				windowID, conflict.BookedDates)
			return conflict
		}
		if errors.Is(err, scheduleservice.ErrWindowNotFound) {
			s.logger.Warn("Remove: window id=%d not found", windowID)
			return ErrWindowNotFound
		}
		s.logger.Error("Remove: schedule service error for window=%d: %v", windowID, err)
		return fmt.Errorf("%w: Remove - schedule service error: %v", ErrInternal, err)
	}

	if _, err := s.refetch(ctx, req.VendorID); err != nil {
		s.logger.Warn("Remove: refetch after delete failed for vendor=%d: %v", req.VendorID, err)
	}

	s.logger.Info("Remove: window id=%d deleted for vendor=%d (expected remainders: %d)",
		windowID, req.VendorID, len(plan.Remainders))
	return nil
}

// validate прогоняет ввод через Resolver, транслируя нарушения как есть
func (s *Service) validate(req *models.SaveWindowRequest) (*domain.AvailabilityWindow, error) {
	if req.VendorID <= 0 {
		return nil, fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	window, err := s.resolver.ValidateCreateOrUpdate(resolver.WindowInput{
		VendorID:  req.VendorID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		s.logger.Warn("validate: rejected input for vendor=%d: %v", req.VendorID, err)
		return nil, err
	}

	return window, nil
}

// findWindow ищет окно в кэше сессии, при промахе перечитывает коллекцию
func (s *Service) findWindow(ctx context.Context, vendorID, windowID int64) (*domain.AvailabilityWindow, error) {
	if w := s.cachedWindow(vendorID, windowID); w != nil {
		return w, nil
	}

	if _, err := s.refetch(ctx, vendorID); err != nil {
		return nil, err
	}

	if w := s.cachedWindow(vendorID, windowID); w != nil {
		return w, nil
	}

	return nil, ErrWindowNotFound
}

func (s *Service) cachedWindow(vendorID, windowID int64) *domain.AvailabilityWindow {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.windows[vendorID] {
		if w.ID == windowID {
			return w
		}
	}
	return nil
}

func (s *Service) refetch(ctx context.Context, vendorID int64) ([]*domain.AvailabilityWindow, error) {
	windows, err := s.client.ListAvailability(ctx, vendorID)
	if err != nil {
		s.logger.Error("refetch: schedule service error for vendor=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: refetch - schedule service error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.windows[vendorID] = windows
	s.mu.Unlock()

	return windows, nil
}

func toDeletionRequest(req *models.DeleteWindowRequest) (resolver.DeletionRequest, error) {
	if req.VendorID <= 0 {
		return resolver.DeletionRequest{}, fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	// Пустой диапазон означает удаление окна целиком
	if req.StartDate == "" && req.EndDate == "" {
		return resolver.DeletionRequest{Mode: resolver.DeleteAll}, nil
	}

	if req.StartDate == "" || req.EndDate == "" {
		return resolver.DeletionRequest{}, fmt.Errorf(
			"%w: partial deletion requires both startDate and endDate", ErrInvalidInput)
	}

	// Формат дат диапазона валидирует Resolver.PlanDeletion
	return resolver.DeletionRequest{
		Mode:  resolver.DeleteRange,
		Start: types.DateString(req.StartDate),
		End:   types.DateString(req.EndDate),
	}, nil
}
