package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	catalogRepo "github.com/m04kA/salon-booking/internal/infra/storage/catalog"
)

const maxStylistNameLength = 255

// Service справочник мастеров и услуг
type Service struct {
	repo         CatalogRepository
	txManager    TransactionManager
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

func NewService(repo CatalogRepository, txManager TransactionManager, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:         repo,
		txManager:    txManager,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListStylists все мастера
func (s *Service) ListStylists(ctx context.Context) (*StylistListResponse, error) {
	list, err := s.repo.ListStylists(ctx, nil)
	if err != nil {
		s.logger.Error("ListStylists: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStylists - repository error: %v", ErrInternal, err)
	}
	return fromDomainStylistList(list), nil
}

// ListStylistsByService мастера, оказывающие услугу
func (s *Service) ListStylistsByService(ctx context.Context, serviceID int64) (*StylistListResponse, error) {
	exists, err := s.repo.ServiceExists(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListStylistsByService: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListStylistsByService - repository error: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("ListStylistsByService: service id=%d not found", serviceID)
		return nil, ErrServiceNotFound
	}

	list, err := s.repo.ListStylists(ctx, &serviceID)
	if err != nil {
		s.logger.Error("ListStylistsByService: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListStylistsByService - repository error: %v", ErrInternal, err)
	}
	return fromDomainStylistList(list), nil
}

// ListServices все услуги салона
func (s *Service) ListServices(ctx context.Context) (*ServiceListResponse, error) {
	list, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(list))}
	for _, svc := range list {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}
	return resp, nil
}

// AddStylist создаёт мастера вместе с привязкой к услугам
func (s *Service) AddStylist(ctx context.Context, req *CreateStylistRequest) (*StylistResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxStylistNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, maxStylistNameLength)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: serviceIds must be positive", ErrInvalidInput)
		}
	}

	var created *domain.Stylist
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.CreateStylist(txCtx, &domain.Stylist{Name: name, ServiceIDs: req.ServiceIDs})
		return err
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("AddStylist: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("AddStylist: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddStylist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddStylist: created stylist id=%d name=%q", created.ID, created.Name)
	resp := fromDomainStylist(created)
	return &resp, nil
}

// DeleteStylist удаляет мастера. Его записи остаются без мастера.
func (s *Service) DeleteStylist(ctx context.Context, id int64) error {
	if err := s.repo.DeleteStylist(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			s.logger.Warn("DeleteStylist: stylist id=%d not found", id)
			return ErrStylistNotFound
		}
		s.logger.Error("DeleteStylist: repository error for stylist id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStylist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteStylist: stylist id=%d deleted", id)
	return nil
}

// StaffOverview мастера с количеством записей на сегодня
func (s *Service) StaffOverview(ctx context.Context) (*StaffResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now().In(s.location))

	staff, err := s.repo.StaffOverview(ctx, today)
	if err != nil {
		s.logger.Error("StaffOverview: repository error: %v", err)
		return nil, fmt.Errorf("%w: StaffOverview - repository error: %v", ErrInternal, err)
	}

	resp := &StaffResponse{
		Date:  today.Format(domain.DateFormat),
		Staff: make([]StaffMemberResponse, 0, len(staff)),
	}
	for _, m := range staff {
		resp.Staff = append(resp.Staff, StaffMemberResponse{
			StylistID:         m.StylistID,
			Name:              m.Name,
			AppointmentsToday: m.AppointmentsToday,
		})
	}
	return resp, nil
}
