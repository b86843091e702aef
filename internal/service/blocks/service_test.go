package blocks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	blockRepo "github.com/m04kA/salon-booking/internal/infra/storage/block"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/ptr"
	"github.com/m04kA/salon-booking/pkg/types"
)

type dayKey struct {
	stylistID int64
	date      string
}

type fakeRepo struct {
	nextID   int64
	days     map[dayKey]*domain.BlockedDay
	slots    map[int64]*domain.BlockedSlot
	stylists map[int64]bool
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		days:     make(map[dayKey]*domain.BlockedDay),
		slots:    make(map[int64]*domain.BlockedSlot),
		stylists: map[int64]bool{1: true},
	}
}

func (r *fakeRepo) CreateDay(_ context.Context, day *domain.BlockedDay) (*domain.BlockedDay, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	if !r.stylists[day.StylistID] {
		return nil, false, blockRepo.ErrStylistNotFound
	}
	key := dayKey{day.StylistID, day.Date.Format(domain.DateFormat)}
	if existing, ok := r.days[key]; ok {
		return existing, false, nil
	}
	r.nextID++
	day.ID = r.nextID
	r.days[key] = day
	return day, true, nil
}

func (r *fakeRepo) CreateSlot(_ context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	for _, s := range r.slots {
		if s.StylistID == slot.StylistID && s.Date.Equal(slot.Date) && s.Time == slot.Time {
			return s, false, nil
		}
	}
	r.nextID++
	slot.ID = r.nextID
	r.slots[slot.ID] = slot
	return slot, true, nil
}

func (r *fakeRepo) DeleteDay(_ context.Context, id int64) (bool, error) {
	for k, d := range r.days {
		if d.ID == id {
			delete(r.days, k)
			return true, nil
		}
	}
	return false, r.err
}

func (r *fakeRepo) DeleteSlot(_ context.Context, id int64) (bool, error) {
	if _, ok := r.slots[id]; ok {
		delete(r.slots, id)
		return true, nil
	}
	return false, r.err
}

func (r *fakeRepo) ListDays(_ context.Context, stylistID int64) ([]*domain.BlockedDay, error) {
	out := make([]*domain.BlockedDay, 0)
	for _, d := range r.days {
		if d.StylistID == stylistID {
			out = append(out, d)
		}
	}
	return out, r.err
}

func (r *fakeRepo) ListSlots(_ context.Context, stylistID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	out := make([]*domain.BlockedSlot, 0)
	for _, s := range r.slots {
		if s.StylistID == stylistID && s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	return out, r.err
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var day = time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)

func TestBlockDay_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{}, logger.Nop{})

	first, err := svc.BlockDay(context.Background(), &BlockDayRequest{StylistID: 1, Date: day, Reason: ptr.Ptr("Vacaciones")})
	require.NoError(t, err)
	require.Len(t, first.BlockedDays, 1)
	assert.True(t, first.BlockedDays[0].Created)

	second, err := svc.BlockDay(context.Background(), &BlockDayRequest{StylistID: 1, Date: day, Reason: ptr.Ptr("Otro motivo")})
	require.NoError(t, err)
	require.Len(t, second.BlockedDays, 1)
	assert.False(t, second.BlockedDays[0].Created)
	assert.Equal(t, first.BlockedDays[0].ID, second.BlockedDays[0].ID)
	assert.Equal(t, "Vacaciones", *second.BlockedDays[0].Reason)
}

func TestBlockDay_Range(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{}, logger.Nop{})

	to := day.AddDate(0, 0, 9)
	resp, err := svc.BlockDay(context.Background(), &BlockDayRequest{StylistID: 1, Date: day, To: &to})
	require.NoError(t, err)

	require.Len(t, resp.BlockedDays, 10)
	assert.Equal(t, "2025-12-24", resp.BlockedDays[0].Date)
	assert.Equal(t, "2026-01-02", resp.BlockedDays[9].Date)
	assert.Nil(t, resp.BlockedDays[0].Reason)
}

func TestBlockDay_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{}, logger.Nop{})
	before := day.AddDate(0, 0, -1)
	tooFar := day.AddDate(2, 0, 0)
	long := strings.Repeat("x", domain.MaxBlockReasonLength+1)

	tests := []struct {
		name string
		req  *BlockDayRequest
	}{
		{"no stylist", &BlockDayRequest{Date: day}},
		{"no date", &BlockDayRequest{StylistID: 1}},
		{"reversed range", &BlockDayRequest{StylistID: 1, Date: day, To: &before}},
		{"range too long", &BlockDayRequest{StylistID: 1, Date: day, To: &tooFar}},
		{"reason too long", &BlockDayRequest{StylistID: 1, Date: day, Reason: ptr.Ptr(long)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BlockDay(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBlockDay_UnknownStylist(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{}, logger.Nop{})

	_, err := svc.BlockDay(context.Background(), &BlockDayRequest{StylistID: 99, Date: day})
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestBlockSlot_AndList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{}, logger.Nop{})

	resp, err := svc.BlockSlot(context.Background(), &BlockSlotRequest{StylistID: 1, Date: day, Time: "12:00"})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, "12:00", resp.Time)

	list, err := svc.ListBlockedSlots(context.Background(), 1, day)
	require.NoError(t, err)
	require.Len(t, list.BlockedSlots, 1)

	_, err = svc.BlockSlot(context.Background(), &BlockSlotRequest{StylistID: 1, Date: day, Time: types.TimeString("25:00")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnblock_IdempotentToAbsence(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{}, logger.Nop{})

	resp, err := svc.BlockDay(context.Background(), &BlockDayRequest{StylistID: 1, Date: day})
	require.NoError(t, err)
	id := resp.BlockedDays[0].ID

	require.NoError(t, svc.UnblockDay(context.Background(), id))
	require.NoError(t, svc.UnblockDay(context.Background(), id))
	require.NoError(t, svc.UnblockSlot(context.Background(), 12345))

	list, err := svc.ListBlockedDays(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list.BlockedDays)
}

func TestUnblock_StorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo, passthroughTx{}, logger.Nop{})

	assert.ErrorIs(t, svc.UnblockDay(context.Background(), 1), ErrInternal)
	assert.ErrorIs(t, svc.UnblockSlot(context.Background(), 1), ErrInternal)
}
