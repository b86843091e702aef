package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	catalogRepo "github.com/m04kA/salon-booking/internal/infra/storage/catalog"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/types"
)

type fakeCatalog struct{}

func (fakeCatalog) GetStylist(_ context.Context, id int64) (*domain.Stylist, error) {
	if id != 1 {
		return nil, catalogRepo.ErrStylistNotFound
	}
	return &domain.Stylist{ID: 1, Name: "Ana"}, nil
}

type fakeLedger struct {
	snapshot *domain.DaySnapshot
	err      error
	inTx     bool
}

func (f *fakeLedger) Snapshot(ctx context.Context, stylistID int64, date time.Time) (*domain.DaySnapshot, error) {
	f.inTx, _ = ctx.Value(txMarker{}).(bool)
	if f.err != nil {
		return nil, f.err
	}
	s := *f.snapshot
	s.StylistID = stylistID
	s.Date = date
	return &s, nil
}

type txMarker struct{}

type fakeTx struct{}

func (fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txMarker{}, true))
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newTestUseCase(ledger *fakeLedger) *UseCase {
	uc := NewUseCase(fakeCatalog{}, ledger, fakeTx{}, nil, time.UTC, logger.Nop{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_FreeSlots(t *testing.T) {
	ledger := &fakeLedger{snapshot: &domain.DaySnapshot{
		BlockedSlots:  []types.TimeString{"13:00"},
		OccupiedSlots: []types.TimeString{"09:00", "10:00"},
	}}
	uc := newTestUseCase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{StylistID: 1, Date: "2025-06-11"})
	require.NoError(t, err)

	assert.True(t, ledger.inTx)
	assert.Equal(t, "Ana", resp.StylistName)
	assert.False(t, resp.PastDate)
	assert.Equal(t, []types.TimeString{
		"11:00", "12:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	}, resp.FreeSlots)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, resp.OccupiedSlots)
}

func TestExecute_DayBlocked(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{snapshot: &domain.DaySnapshot{DayBlocked: true}})

	resp, err := uc.Execute(context.Background(), &Request{StylistID: 1, Date: "2025-06-11"})
	require.NoError(t, err)
	assert.True(t, resp.DayBlocked)
	assert.Empty(t, resp.FreeSlots)
}

func TestExecute_PastDateHasNoFreeSlots(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{snapshot: &domain.DaySnapshot{}})

	resp, err := uc.Execute(context.Background(), &Request{StylistID: 1, Date: "2025-06-09"})
	require.NoError(t, err)
	assert.True(t, resp.PastDate)
	assert.NotNil(t, resp.FreeSlots)
	assert.Empty(t, resp.FreeSlots)
}

func TestExecute_CustomGrid(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{snapshot: &domain.DaySnapshot{OccupiedSlots: []types.TimeString{"10:30"}}})
	uc.grid = []types.TimeString{"10:00", "10:30", "11:00"}

	resp, err := uc.Execute(context.Background(), &Request{StylistID: 1, Date: "2025-06-10"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, resp.FreeSlots)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{snapshot: &domain.DaySnapshot{}})

	_, err := uc.Execute(context.Background(), &Request{StylistID: 0, Date: "2025-06-11"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StylistID: 1, Date: "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StylistID: 7, Date: "2025-06-11"})
	assert.ErrorIs(t, err, ErrStylistNotFound)

	failing := newTestUseCase(&fakeLedger{err: errors.New("timeout")})
	_, err = failing.Execute(context.Background(), &Request{StylistID: 1, Date: "2025-06-11"})
	assert.ErrorIs(t, err, ErrInternal)
}
