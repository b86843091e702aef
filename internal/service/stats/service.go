package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// Service счётчики и показатель удовлетворённости.
// "Сегодня" определяется в часовом поясе салона.
type Service struct {
	repo         AppointmentCounter
	txManager    TransactionManager
	location     *time.Location
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

func NewService(
	repo AppointmentCounter,
	txManager TransactionManager,
	location *time.Location,
	windowDays int,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	if windowDays <= 0 {
		windowDays = domain.DefaultSatisfactionWindowDays
	}
	return &Service{
		repo:         repo,
		txManager:    txManager,
		location:     location,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (s *Service) today() time.Time {
	return domain.DateOnly(s.timeProvider.Now().In(s.location))
}

// ConfirmedToday количество подтверждённых записей на сегодня
func (s *Service) ConfirmedToday(ctx context.Context) (int, error) {
	today := s.today()
	n, err := s.repo.CountByStatus(ctx, domain.StatusConfirmed, &today)
	if err != nil {
		s.logger.Error("ConfirmedToday: repository error: %v", err)
		return 0, fmt.Errorf("%w: ConfirmedToday - repository error: %v", ErrInternal, err)
	}
	return n, nil
}

// PendingCount количество записей в статусе pending за всё время
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	n, err := s.repo.CountByStatus(ctx, domain.StatusPending, nil)
	if err != nil {
		s.logger.Error("PendingCount: repository error: %v", err)
		return 0, fmt.Errorf("%w: PendingCount - repository error: %v", ErrInternal, err)
	}
	return n, nil
}

// ConfirmedThisMonth подтверждённые записи текущего месяца
func (s *Service) ConfirmedThisMonth(ctx context.Context) (int, error) {
	return s.ConfirmedInMonth(ctx, s.today())
}

// ConfirmedInMonth подтверждённые записи в [первое число месяца day, первое число следующего месяца)
func (s *Service) ConfirmedInMonth(ctx context.Context, day time.Time) (int, error) {
	from, to := domain.MonthRange(day)
	n, err := s.repo.CountByStatusInRange(ctx, domain.StatusConfirmed, from, to)
	if err != nil {
		s.logger.Error("ConfirmedInMonth: repository error for %s: %v", from.Format("2006-01"), err)
		return 0, fmt.Errorf("%w: ConfirmedInMonth - repository error: %v", ErrInternal, err)
	}
	return n, nil
}

// Satisfaction доля подтверждённых записей за окно [сегодня - windowDays, сегодня] в процентах
func (s *Service) Satisfaction(ctx context.Context) (float64, error) {
	today := s.today()
	from := today.AddDate(0, 0, -s.windowDays)

	counts, err := s.repo.CountByStatusBetween(ctx, from, today)
	if err != nil {
		s.logger.Error("Satisfaction: repository error: %v", err)
		return 0, fmt.Errorf("%w: Satisfaction - repository error: %v", ErrInternal, err)
	}
	return counts.Percentage(), nil
}

// Dashboard все счётчики одним снимком
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	resp := &DashboardResponse{}

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if resp.ConfirmedToday, err = s.ConfirmedToday(txCtx); err != nil {
			return err
		}
		if resp.Pending, err = s.PendingCount(txCtx); err != nil {
			return err
		}
		if resp.ConfirmedThisMonth, err = s.ConfirmedThisMonth(txCtx); err != nil {
			return err
		}
		resp.Satisfaction, err = s.Satisfaction(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dashboard: today=%d pending=%d month=%d satisfaction=%.1f",
		resp.ConfirmedToday, resp.Pending, resp.ConfirmedThisMonth, resp.Satisfaction)
	return resp, nil
}
