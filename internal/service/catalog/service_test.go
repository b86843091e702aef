package catalog

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
)

type fakeRepo struct {
	stylists map[int64]*domain.Stylist
	services map[int64]*domain.Service
	nextID   int64
	err      error

	staffDate time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		stylists: map[int64]*domain.Stylist{
			1: {ID: 1, Name: "Ana", ServiceIDs: []int64{10}},
			2: {ID: 2, Name: "Lucía", ServiceIDs: []int64{10, 20}},
		},
		services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Corte", Price: 5000, DurationMinutes: 60},
			20: {ID: 20, Name: "Color", Price: 12000, DurationMinutes: 60},
		},
		nextID: 2,
	}
}

func (r *fakeRepo) ListStylists(_ context.Context, serviceID *int64) ([]*domain.Stylist, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Stylist, 0)
	for id := int64(1); id <= r.nextID; id++ {
		s, ok := r.stylists[id]
		if !ok {
			continue
		}
		if serviceID == nil || s.Offers(*serviceID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateStylist(_ context.Context, s *domain.Stylist) (*domain.Stylist, error) {
	for _, id := range s.ServiceIDs {
		if _, ok := r.services[id]; !ok {
			return nil, catalogRepo.ErrServiceNotFound
		}
	}
	r.nextID++
	s.ID = r.nextID
	r.stylists[s.ID] = s
	return s, nil
}

func (r *fakeRepo) DeleteStylist(_ context.Context, id int64) error {
	if _, ok := r.stylists[id]; !ok {
		return catalogRepo.ErrStylistNotFound
	}
	delete(r.stylists, id)
	return nil
}

func (r *fakeRepo) ServiceExists(_ context.Context, id int64) (bool, error) {
	_, ok := r.services[id]
	return ok, r.err
}

func (r *fakeRepo) ListServices(_ context.Context) ([]*domain.Service, error) {
	return []*domain.Service{r.services[20], r.services[10]}, r.err
}

func (r *fakeRepo) StaffOverview(_ context.Context, date time.Time) ([]*domain.StaffMember, error) {
	r.staffDate = date
	return []*domain.StaffMember{{StylistID: 1, Name: "Ana", AppointmentsToday: 3}}, r.err
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestListStylistsByService(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{}, time.UTC, logger.Nop{})

	resp, err := svc.ListStylistsByService(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, resp.Stylists, 1)
	assert.Equal(t, "Lucía", resp.Stylists[0].Name)

	_, err = svc.ListStylistsByService(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAddStylist(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{}, time.UTC, logger.Nop{})

	resp, err := svc.AddStylist(context.Background(), &CreateStylistRequest{Name: "  Sofía ", ServiceIDs: []int64{20}})
	require.NoError(t, err)
	assert.Equal(t, "Sofía", resp.Name)
	assert.Equal(t, []int64{20}, resp.ServiceIDs)

	_, err = svc.AddStylist(context.Background(), &CreateStylistRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddStylist(context.Background(), &CreateStylistRequest{Name: "Marta", ServiceIDs: []int64{99}})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	noServices, err := svc.AddStylist(context.Background(), &CreateStylistRequest{Name: "Marta"})
	require.NoError(t, err)
	assert.NotNil(t, noServices.ServiceIDs)
}

func TestDeleteStylist(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{}, time.UTC, logger.Nop{})

	require.NoError(t, svc.DeleteStylist(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteStylist(context.Background(), 1), ErrStylistNotFound)
}

func TestStaffOverview_Today(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{}, time.FixedZone("UTC-3", -3*3600), logger.Nop{})
	svc.timeProvider = fixedTime{t: time.Date(2025, 10, 16, 2, 0, 0, 0, time.UTC)}

	resp, err := svc.StaffOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", resp.Date)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, 3, resp.Staff[0].AppointmentsToday)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), repo.staffDate)
}

func TestListServices_StorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("boom")
	svc := NewService(repo, passthroughTx{}, time.UTC, logger.Nop{})

	_, err := svc.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
