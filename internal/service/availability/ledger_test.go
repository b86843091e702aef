package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

type fakeBlocks struct {
	dayBlocked bool
	times      []types.TimeString
	err        error
}

func (f *fakeBlocks) IsDayBlocked(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return f.dayBlocked, f.err
}

func (f *fakeBlocks) BlockedTimes(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.times, f.err
}

type fakeOccupancy struct {
	times []types.TimeString
	err   error
}

func (f *fakeOccupancy) OccupiedTimes(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.times, f.err
}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func TestLedger_Snapshot(t *testing.T) {
	ledger := NewLedger(
		&fakeBlocks{times: []types.TimeString{"12:00"}},
		&fakeOccupancy{times: []types.TimeString{"10:00"}},
	)

	snap, err := ledger.Snapshot(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.False(t, snap.DayBlocked)
	assert.Equal(t, []types.TimeString{"12:00"}, snap.BlockedSlots)
	assert.Equal(t, []types.TimeString{"10:00"}, snap.OccupiedSlots)

	assert.True(t, snap.IsFree("09:00"))
	assert.False(t, snap.IsFree("10:00"))
	assert.False(t, snap.IsFree("12:00"))

	free := snap.FreeSlots(domain.DefaultSlotTimes)
	assert.Len(t, free, len(domain.DefaultSlotTimes)-2)
	assert.NotContains(t, free, types.TimeString("10:00"))
	assert.NotContains(t, free, types.TimeString("12:00"))
}

func TestLedger_DayBlockEmptiesGrid(t *testing.T) {
	ledger := NewLedger(&fakeBlocks{dayBlocked: true}, &fakeOccupancy{})

	snap, err := ledger.Snapshot(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.True(t, snap.DayBlocked)
	assert.Empty(t, snap.FreeSlots(domain.DefaultSlotTimes))
}

func TestLedger_StorageError(t *testing.T) {
	ledger := NewLedger(&fakeBlocks{}, &fakeOccupancy{err: errors.New("connection reset")})

	_, err := ledger.Snapshot(context.Background(), 1, testDate)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = ledger.OccupiedSlotsOn(context.Background(), 1, testDate)
	assert.ErrorIs(t, err, ErrInternal)
}
