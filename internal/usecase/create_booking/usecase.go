package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avdnk/DocBooking/internal/domain"
	bookingRepo "github.com/avdnk/DocBooking/internal/infra/storage/booking"
	serviceRepo "github.com/avdnk/DocBooking/internal/infra/storage/service"
	"github.com/avdnk/DocBooking/pkg/codes"
	"github.com/avdnk/DocBooking/pkg/metrics"
)

// Количество попыток при коллизии кода бронирования
const maxCodeAttempts = 3

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	serviceRepo  ServiceRepository
	schedule     Schedule
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	codePrefix   string
	metrics      *metrics.Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	blocks BlockRepository,
	services ServiceRepository,
	sched Schedule,
	txManager TransactionManager,
	notifier Notifier,
	codePrefix string,
	metricsCollector *metrics.Metrics,
	logger Logger,
) *UseCase {
	if codePrefix == "" {
		codePrefix = domain.DefaultBookingCodePrefix
	}
	return &UseCase{
		bookingRepo:  bookings,
		blockRepo:    blocks,
		serviceRepo:  services,
		schedule:     sched,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		codePrefix:   codePrefix,
		metrics:      metricsCollector,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDateNotInPast(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокировки на дату
		blocks, err := uc.blockRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list blocked ranges: %v", err)
			return fmt.Errorf("%w: failed to list blocked ranges: %v", ErrInternal, err)
		}

		for _, block := range blocks {
			if block.IsFullDay() {
				uc.logger.Warn("CreateBooking: date %s is fully blocked", req.Date.Format(domain.DateFormat))
				return ErrDayBlocked
			}
		}

		// 4.2. Рабочее окно на день недели
		window, ok := uc.schedule.WindowFor(req.Date)
		if !ok {
			uc.logger.Warn("CreateBooking: no working hours on %s", req.Date.Format(domain.DateFormat))
			return ErrDayClosed
		}

		// 4.3. Время лежит на сетке и услуга помещается в окно
		if err := validateSlotFitsWindow(req.StartTime, svc.DurationMinutes, window); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// 4.4. Подтверждённые бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.5. Проверяем пересечения с бронированиями и частичными блокировками
		conflicts, err := slotConflicts(req.StartTime, svc.DurationMinutes, bookings, blocks)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflicts {
			uc.logger.Warn("CreateBooking: slot %s %s is not available",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotNotAvailable
		}

		// 4.6. Создаем бронирование; при коллизии кода генерируем заново
		result, err = uc.createWithUniqueCode(txCtx, req, svc)
		return err
	})

	if err != nil {
		// Считаем и проигранные гонки за слот: ErrSlotTaken выше уже приведён к ErrSlotNotAvailable
		if errors.Is(err, ErrSlotNotAvailable) && uc.metrics != nil {
			uc.metrics.BookingConflictsTotal.Inc()
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d code=%s", result.ID, result.Code)

	if uc.metrics != nil {
		uc.metrics.BookingsCreatedTotal.Inc()
	}

	// 5. Побочные эффекты (письма, календарь) после коммита транзакции
	uc.notifier.BookingCreated(result)

	return toResponse(result), nil
}

// createWithUniqueCode сохраняет бронирование, перегенерируя код и токен
// при коллизии уникальных ключей
func (uc *UseCase) createWithUniqueCode(ctx context.Context, req *Request, svc *domain.Service) (*domain.Booking, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := codes.GenerateBookingCode(uc.codePrefix, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to generate booking code: %v", ErrInternal, err)
		}

		token, err := codes.GenerateAccessToken()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to generate access token: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			Code:          code,
			ServiceID:     svc.ID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			CustomerPhone: strings.TrimSpace(req.CustomerPhone),
			Comments:      req.Comments,
			Status:        domain.StatusConfirmed,
			AccessToken:   token,
			// Денормализация данных услуги
			ServiceName:     svc.Name,
			ServiceDuration: svc.DurationMinutes,
		}

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}

		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			// Частичный индекс по подтверждённым слотам - страховка от гонки
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, bookingRepo.ErrDuplicateCode) {
			uc.logger.Warn("CreateBooking: booking code collision, attempt %d/%d", attempt, maxCodeAttempts)
			continue
		}

		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return nil, fmt.Errorf("%w: exhausted booking code attempts", ErrInternal)
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:              booking.ID,
		Code:            booking.Code,
		ServiceID:       booking.ServiceID,
		ServiceName:     booking.ServiceName,
		ServiceDuration: booking.ServiceDuration,
		BookingDate:     booking.BookingDate,
		StartTime:       booking.StartTime,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		Comments:        booking.Comments,
		Status:          string(booking.Status),
		AccessToken:     booking.AccessToken,
		CreatedAt:       booking.CreatedAt,
	}
}
