package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// Ledger проекция доступности мастера только для чтения.
// Если ctx несёт транзакцию, все чтения видят её снимок.
type Ledger struct {
	blocks    BlockReader
	occupancy OccupancyReader
}

func NewLedger(blocks BlockReader, occupancy OccupancyReader) *Ledger {
	return &Ledger{
		blocks:    blocks,
		occupancy: occupancy,
	}
}

// IsDayBlocked заблокирован ли весь день мастера
func (l *Ledger) IsDayBlocked(ctx context.Context, stylistID int64, date time.Time) (bool, error) {
	blocked, err := l.blocks.IsDayBlocked(ctx, stylistID, date)
	if err != nil {
		return false, fmt.Errorf("%w: IsDayBlocked - stylist=%d date=%s: %v",
			ErrInternal, stylistID, date.Format(domain.DateFormat), err)
	}
	return blocked, nil
}

// BlockedSlotsOn времена с блокировкой слота
func (l *Ledger) BlockedSlotsOn(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error) {
	times, err := l.blocks.BlockedTimes(ctx, stylistID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: BlockedSlotsOn - stylist=%d date=%s: %v",
			ErrInternal, stylistID, date.Format(domain.DateFormat), err)
	}
	return times, nil
}

// OccupiedSlotsOn времена активных (pending/confirmed) записей
func (l *Ledger) OccupiedSlotsOn(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error) {
	times, err := l.occupancy.OccupiedTimes(ctx, stylistID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlotsOn - stylist=%d date=%s: %v",
			ErrInternal, stylistID, date.Format(domain.DateFormat), err)
	}
	return times, nil
}

// Snapshot собирает все три проекции на дату
func (l *Ledger) Snapshot(ctx context.Context, stylistID int64, date time.Time) (*domain.DaySnapshot, error) {
	dayBlocked, err := l.IsDayBlocked(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	blocked, err := l.BlockedSlotsOn(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	occupied, err := l.OccupiedSlotsOn(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	return &domain.DaySnapshot{
		StylistID:     stylistID,
		Date:          domain.DateOnly(date),
		DayBlocked:    dayBlocked,
		BlockedSlots:  blocked,
		OccupiedSlots: occupied,
	}, nil
}
