package request_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/salon-booking/internal/infra/storage/catalog"
)

// UseCase use case создания записи клиента
type UseCase struct {
	appointmentRepo    AppointmentRepository
	catalog            StylistCatalog
	ledger             AvailabilityLedger
	txManager          TransactionManager
	metrics            MetricsRecorder
	location           *time.Location
	enforceEligibility bool
	timeProvider       TimeProvider
	logger             Logger
}

// Options настройки use case из [schedule]
type Options struct {
	Location           *time.Location
	EnforceEligibility bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog StylistCatalog,
	ledger AvailabilityLedger,
	txManager TransactionManager,
	metrics MetricsRecorder,
	opts Options,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		catalog:            catalog,
		ledger:             ledger,
		txManager:          txManager,
		metrics:            metrics,
		location:           opts.Location,
		enforceEligibility: opts.EnforceEligibility,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания записи.
// Проверки идут строго по порядку и прерываются на первой ошибке:
// входные данные, прошедшая дата, мастер, блокировка дня, занятость слота.
// Проверка слота и вставка выполняются в одной транзакции под блокировкой слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.IncBooking(resultLabel(err))
	}()

	uc.logger.Info("RequestBooking: client=%d, service=%d, stylist=%s, date=%s, time=%s",
		req.ClientID, req.ServiceID, formatStylist(req.StylistID), req.Date, req.Time)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не раньше сегодняшней (сравниваются только календарные даты)
	today := uc.timeProvider.Now().In(uc.location)
	if domain.IsBeforeDay(parsed.date, today) {
		uc.logger.Warn("RequestBooking: date %s is before today %s",
			parsed.date.Format(domain.DateFormat), today.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// 3. Мастер существует (и, если включено, оказывает услугу)
	if req.StylistID != nil {
		if err := uc.checkStylist(ctx, *req.StylistID, req.ServiceID); err != nil {
			return nil, err
		}
	}

	var result *domain.Appointment

	// 4. Проверка доступности и вставка атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if req.StylistID != nil {
			if err := uc.checkAvailability(txCtx, *req.StylistID, parsed); err != nil {
				return err
			}
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:  req.ClientID,
			ServiceID: req.ServiceID,
			StylistID: req.StylistID,
			Date:      parsed.date,
			Time:      parsed.time,
			Status:    domain.StatusPending,
			Notes:     parsed.notes,
		})
		if err != nil {
			return uc.mapCreateError(err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestBooking: created appointment id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		ServiceID: result.ServiceID,
		StylistID: result.StylistID,
		Date:      result.Date,
		Time:      result.Time,
		Status:    string(result.Status),
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
	}, nil
}

func (uc *UseCase) checkStylist(ctx context.Context, stylistID, serviceID int64) error {
	stylist, err := uc.catalog.GetStylist(ctx, stylistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			uc.logger.Warn("RequestBooking: stylist id=%d not found", stylistID)
			return ErrStylistNotFound
		}
		uc.logger.Error("RequestBooking: failed to get stylist id=%d: %v", stylistID, err)
		return fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	if uc.enforceEligibility && !stylist.Offers(serviceID) {
		uc.logger.Warn("RequestBooking: stylist id=%d does not offer service id=%d", stylistID, serviceID)
		return ErrStylistNotEligible
	}

	return nil
}

// checkAvailability вызывается внутри транзакции
func (uc *UseCase) checkAvailability(txCtx context.Context, stylistID int64, parsed *parsedRequest) error {
	// Блокировка слота сериализует конкурирующие запросы на (мастер, дата, время)
	if err := uc.appointmentRepo.LockSlot(txCtx, stylistID, parsed.date, parsed.time); err != nil {
		uc.logger.Error("RequestBooking: failed to lock slot: %v", err)
		return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
	}

	dayBlocked, err := uc.ledger.IsDayBlocked(txCtx, stylistID, parsed.date)
	if err != nil {
		uc.logger.Error("RequestBooking: failed to check day block: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if dayBlocked {
		uc.logger.Warn("RequestBooking: stylist id=%d is unavailable on %s",
			stylistID, parsed.date.Format(domain.DateFormat))
		return ErrStylistUnavailableDay
	}

	blocked, err := uc.ledger.BlockedSlotsOn(txCtx, stylistID, parsed.date)
	if err != nil {
		uc.logger.Error("RequestBooking: failed to read blocked slots: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	occupied, err := uc.ledger.OccupiedSlotsOn(txCtx, stylistID, parsed.date)
	if err != nil {
		uc.logger.Error("RequestBooking: failed to read occupied slots: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := checkSlotFree(parsed.time, blocked, occupied); err != nil {
		uc.logger.Warn("RequestBooking: %v", err)
		return err
	}

	return nil
}

func (uc *UseCase) mapCreateError(err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrSlotTaken):
		// Уникальный индекс сработал раньше блокировки
		uc.logger.Warn("RequestBooking: slot taken by a concurrent request")
		return ErrSlotOccupied
	case errors.Is(err, appointmentRepo.ErrStylistNotFound):
		uc.logger.Warn("RequestBooking: stylist deleted before insert")
		return ErrStylistNotFound
	case errors.Is(err, appointmentRepo.ErrClientNotFound):
		return fmt.Errorf("%w: unknown client", ErrInvalidInput)
	case errors.Is(err, appointmentRepo.ErrServiceNotFound):
		return fmt.Errorf("%w: unknown service", ErrInvalidInput)
	}
	uc.logger.Error("RequestBooking: failed to create appointment: %v", err)
	return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
}

func formatStylist(id *int64) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}
