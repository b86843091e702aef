package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/salon-booking/internal/domain"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	"github.com/m04kA/salon-booking/internal/service/appointments/models"
)

// Service жизненный цикл записи после её создания
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomainAppointment(appt), nil
}

// Confirm переводит запись в confirmed из любого статуса.
// Повторное подтверждение ничего не меняет. Отменённая запись снова занимает слот,
// поэтому проверка идёт под той же блокировкой слота, что и бронирование.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Confirm: appointment id=%d", id)

	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return s.mapRepoError("Confirm", id, err)
		}

		if appt.IsCancelled() && appt.IsAssigned() {
			if err := s.appointmentRepo.LockSlot(txCtx, *appt.StylistID, appt.Date, appt.Time); err != nil {
				s.logger.Error("Confirm: failed to lock slot for appointment id=%d: %v", id, err)
				return fmt.Errorf("%w: Confirm - lock slot: %v", ErrInternal, err)
			}
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				s.logger.Warn("Confirm: slot of appointment id=%d is taken by another appointment", id)
				return ErrSlotOccupied
			}
			return s.mapRepoError("Confirm", id, err)
		}

		appt.Status = domain.StatusConfirmed
		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: appointment id=%d confirmed", id)
	return models.FromDomainAppointment(result), nil
}

// Cancel переводит запись в cancelled и сохраняет причину.
// Без причины сохраняется domain.DefaultCancellationReason.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) error {
	reason := domain.DefaultCancellationReason
	if req != nil && req.Reason != nil {
		if trimmed := strings.TrimSpace(*req.Reason); trimmed != "" {
			reason = trimmed
		}
	}

	if utf8.RuneCountInString(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	s.logger.Info("Cancel: appointment id=%d, reason=%q", id, reason)

	if err := s.appointmentRepo.Cancel(ctx, id, reason); err != nil {
		return s.mapRepoError("Cancel", id, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return nil
}

// Delete безвозвратно удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

// ListByClient история записей клиента, сначала новые
func (s *Service) ListByClient(ctx context.Context, clientID int64) (*models.AppointmentListResponse, error) {
	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d appointments for client=%d", len(list), clientID)
	return models.FromDomainAppointmentList(list), nil
}

// ListActionable очередь записей для персонала: pending и confirmed, сначала ближайшие
func (s *Service) ListActionable(ctx context.Context) (*models.AppointmentListResponse, error) {
	list, err := s.appointmentRepo.ListByStatuses(ctx, domain.ActiveStatuses)
	if err != nil {
		s.logger.Error("ListActionable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActionable - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(list), nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, ErrSlotOccupied) || errors.Is(err, ErrAppointmentNotFound) || errors.Is(err, ErrInternal) {
		return err
	}
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
