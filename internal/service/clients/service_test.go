package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/salon-booking/internal/domain"
	clientRepo "github.com/m04kA/salon-booking/internal/infra/storage/client"
	"github.com/m04kA/salon-booking/pkg/logger"
)

type fakeRepo struct {
	byPhone map[string]*domain.Client
	nextID  int64
}

func (r *fakeRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if _, ok := r.byPhone[c.Phone]; ok {
		return nil, clientRepo.ErrPhoneTaken
	}
	r.nextID++
	c.ID = r.nextID
	r.byPhone[c.Phone] = c
	return c, nil
}

func (r *fakeRepo) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	c, ok := r.byPhone[phone]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{byPhone: make(map[string]*domain.Client)}
	svc := NewService(repo, logger.Nop{})
	svc.bcryptCost = bcrypt.MinCost
	return svc, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{Name: "María", Phone: "+54 11 5555-1234", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "+541155551234", registered.Phone)
	assert.NotEqual(t, "secreto", repo.byPhone["+541155551234"].PasswordHash)

	logged, err := svc.Login(ctx, &LoginRequest{Phone: "+54 (11) 5555 1234", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, logged.ID)

	_, err = svc.Login(ctx, &LoginRequest{Phone: "+541155551234", Password: "otra-clave"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Phone: "+541100000000", Password: "secreto"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Phone: "1155551234", Password: "secreto"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Name: "Otra", Phone: "11-5555-1234", Password: "secreto2"})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		req  *RegisterRequest
	}{
		{"empty name", &RegisterRequest{Name: " ", Phone: "1155551234", Password: "secreto"}},
		{"short password", &RegisterRequest{Name: "Ana", Phone: "1155551234", Password: "abc"}},
		{"letters in phone", &RegisterRequest{Name: "Ana", Phone: "11-CALL-ME", Password: "secreto"}},
		{"short phone", &RegisterRequest{Name: "Ana", Phone: "123", Password: "secreto"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
