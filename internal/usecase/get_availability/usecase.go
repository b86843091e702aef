package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	catalogRepo "github.com/m04kA/salon-booking/internal/infra/storage/catalog"
	"github.com/m04kA/salon-booking/pkg/types"
)

// UseCase use case получения доступности мастера на дату
type UseCase struct {
	catalog      StylistCatalog
	ledger       AvailabilityLedger
	txManager    TransactionManager
	grid         []types.TimeString
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. Пустая сетка заменяется на domain.DefaultSlotTimes.
func NewUseCase(
	catalog StylistCatalog,
	ledger AvailabilityLedger,
	txManager TransactionManager,
	grid []types.TimeString,
	location *time.Location,
	logger Logger,
) *UseCase {
	if len(grid) == 0 {
		grid = domain.DefaultSlotTimes
	}
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		catalog:      catalog,
		ledger:       ledger,
		txManager:    txManager,
		grid:         grid,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: stylist=%d, date=%s", req.StylistID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Мастер существует
	stylist, err := uc.catalog.GetStylist(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			uc.logger.Warn("GetAvailability: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("GetAvailability: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	// 3. Снимок доступности в одной read-only транзакции
	var snapshot *domain.DaySnapshot
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		snapshot, err = uc.ledger.Snapshot(txCtx, req.StylistID, date)
		return err
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to read ledger: %v", err)
		return nil, fmt.Errorf("%w: failed to read ledger: %v", ErrInternal, err)
	}

	resp := &Response{
		StylistID:     stylist.ID,
		StylistName:   stylist.Name,
		Date:          date,
		DayBlocked:    snapshot.DayBlocked,
		BlockedSlots:  snapshot.BlockedSlots,
		OccupiedSlots: snapshot.OccupiedSlots,
		FreeSlots:     []types.TimeString{},
	}

	// 4. Прошедшая дата недоступна для записи
	today := uc.timeProvider.Now().In(uc.location)
	if domain.IsBeforeDay(date, today) {
		resp.PastDate = true
		return resp, nil
	}

	resp.FreeSlots = snapshot.FreeSlots(uc.grid)

	uc.logger.Info("GetAvailability: stylist=%d date=%s, %d/%d slots free",
		req.StylistID, date.Format(domain.DateFormat), len(resp.FreeSlots), len(uc.grid))
	return resp, nil
}
