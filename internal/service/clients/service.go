package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/salon-booking/internal/domain"
	clientRepo "github.com/m04kA/salon-booking/internal/infra/storage/client"
)

// Service регистрация и проверка пароля клиентов. Сессии и токены не выдаются.
type Service struct {
	repo       ClientRepository
	bcryptCost int
	logger     Logger
}

func NewService(repo ClientRepository, logger Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

// Register создаёт клиента; телефон уникален
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*ClientResponse, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	client, err := s.repo.Create(ctx, &domain.Client{
		Name:         strings.TrimSpace(req.Name),
		Phone:        phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrPhoneTaken) {
			s.logger.Warn("Register: phone %s already registered", phone)
			return nil, ErrPhoneTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: client id=%d registered", client.ID)
	return toResponse(client), nil
}

// Login проверяет телефон и пароль
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*ClientResponse, error) {
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	client, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Login: unknown phone %s", phone)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for client id=%d", client.ID)
		return nil, ErrInvalidCredentials
	}

	return toResponse(client), nil
}

func toResponse(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
