package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	storage "github.com/avdnk/DocBooking/internal/infra/storage/service"
)

// UseCase получения доступных слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	serviceRepo ServiceRepository
	schedule    Schedule
	logger      Logger
}

// NewUseCase создает новый usecase получения доступных слотов
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	serviceRepo ServiceRepository,
	sched Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		serviceRepo: serviceRepo,
		schedule:    sched,
		logger:      logger,
	}
}

// Execute выполняет получение доступных слотов на дату для услуги
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация запроса
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Получаем услугу (длительность определяет, какие слоты помещаются)
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("GetAvailableSlots: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     []Slot{},
	}

	// 3. Получаем блокировки на дату
	blocks, err := uc.blockRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list blocked ranges for %s: %v",
			req.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: failed to list blocked ranges: %v", ErrInternal, err)
	}

	hasFullDay, partialBlocks := splitBlocks(blocks)

	// 4. Полностью заблокированный день - слотов нет
	if hasFullDay {
		return resp, nil
	}

	// 5. Рабочее окно на день недели; выходной - слотов нет
	window, ok := uc.schedule.WindowFor(req.Date)
	if !ok {
		return resp, nil
	}

	// 6. Генерируем сетку слотов по окну
	starts := generateSlotStarts(window, svc.DurationMinutes)
	if len(starts) == 0 {
		return resp, nil
	}

	// 7. Подтверждённые бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v",
			req.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступность каждого слота
	resp.Slots = computeAvailability(starts, svc.DurationMinutes, bookings, partialBlocks)

	return resp, nil
}

func (uc *UseCase) validateRequest(req Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	return nil
}
