package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	blockRepo "github.com/m04kA/salon-booking/internal/infra/storage/block"
)

// Service блокировки дней и слотов мастеров.
// Блокировка не затрагивает уже существующие записи: она действует только на новые бронирования.
type Service struct {
	repo      BlockRepository
	txManager TransactionManager
	logger    Logger
}

func NewService(repo BlockRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// BlockDay блокирует день или, если задан To, каждый день диапазона [Date, To].
// Повторная блокировка возвращает существующую строку с исходной причиной.
func (s *Service) BlockDay(ctx context.Context, req *BlockDayRequest) (*BlockedDayListResponse, error) {
	if err := validateDayRequest(req); err != nil {
		return nil, err
	}
	reason, err := normalizeReason(req.Reason)
	if err != nil {
		return nil, err
	}

	from := domain.DateOnly(req.Date)
	to := from
	if req.To != nil {
		to = domain.DateOnly(*req.To)
	}

	s.logger.Info("BlockDay: stylist=%d from=%s to=%s",
		req.StylistID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	resp := &BlockedDayListResponse{BlockedDays: make([]BlockedDayResponse, 0)}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			day, created, err := s.repo.CreateDay(txCtx, &domain.BlockedDay{
				StylistID: req.StylistID,
				Date:      d,
				Reason:    reason,
			})
			if err != nil {
				return s.mapRepoError("BlockDay", req.StylistID, err)
			}
			resp.BlockedDays = append(resp.BlockedDays, fromDomainDay(day, created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("BlockDay: stylist=%d, %d day(s) blocked", req.StylistID, len(resp.BlockedDays))
	return resp, nil
}

// BlockSlot блокирует один слот мастера
func (s *Service) BlockSlot(ctx context.Context, req *BlockSlotRequest) (*BlockedSlotResponse, error) {
	if err := validateSlotRequest(req); err != nil {
		return nil, err
	}
	reason, err := normalizeReason(req.Reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info("BlockSlot: stylist=%d date=%s time=%s",
		req.StylistID, req.Date.Format(domain.DateFormat), req.Time)

	slot, created, err := s.repo.CreateSlot(ctx, &domain.BlockedSlot{
		StylistID: req.StylistID,
		Date:      domain.DateOnly(req.Date),
		Time:      req.Time,
		Reason:    reason,
	})
	if err != nil {
		return nil, s.mapRepoError("BlockSlot", req.StylistID, err)
	}

	resp := fromDomainSlot(slot, created)
	return &resp, nil
}

// UnblockDay снимает блокировку дня. Отсутствующая блокировка не ошибка.
func (s *Service) UnblockDay(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteDay(ctx, id)
	if err != nil {
		s.logger.Error("UnblockDay: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: UnblockDay - repository error: %v", ErrInternal, err)
	}
	if !deleted {
		s.logger.Info("UnblockDay: block id=%d did not exist", id)
	}
	return nil
}

// UnblockSlot снимает блокировку слота. Отсутствующая блокировка не ошибка.
func (s *Service) UnblockSlot(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteSlot(ctx, id)
	if err != nil {
		s.logger.Error("UnblockSlot: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: UnblockSlot - repository error: %v", ErrInternal, err)
	}
	if !deleted {
		s.logger.Info("UnblockSlot: block id=%d did not exist", id)
	}
	return nil
}

// ListBlockedDays блокировки дней мастера по возрастанию даты
func (s *Service) ListBlockedDays(ctx context.Context, stylistID int64) (*BlockedDayListResponse, error) {
	days, err := s.repo.ListDays(ctx, stylistID)
	if err != nil {
		s.logger.Error("ListBlockedDays: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: ListBlockedDays - repository error: %v", ErrInternal, err)
	}

	resp := &BlockedDayListResponse{BlockedDays: make([]BlockedDayResponse, 0, len(days))}
	for _, d := range days {
		resp.BlockedDays = append(resp.BlockedDays, fromDomainDay(d, false))
	}
	return resp, nil
}

// ListBlockedSlots блокировки слотов мастера на дату
func (s *Service) ListBlockedSlots(ctx context.Context, stylistID int64, date time.Time) (*BlockedSlotListResponse, error) {
	slots, err := s.repo.ListSlots(ctx, stylistID, date)
	if err != nil {
		s.logger.Error("ListBlockedSlots: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: ListBlockedSlots - repository error: %v", ErrInternal, err)
	}

	resp := &BlockedSlotListResponse{BlockedSlots: make([]BlockedSlotResponse, 0, len(slots))}
	for _, sl := range slots {
		resp.BlockedSlots = append(resp.BlockedSlots, fromDomainSlot(sl, false))
	}
	return resp, nil
}

func (s *Service) mapRepoError(op string, stylistID int64, err error) error {
	if errors.Is(err, blockRepo.ErrStylistNotFound) {
		s.logger.Warn("%s: stylist id=%d not found", op, stylistID)
		return ErrStylistNotFound
	}
	s.logger.Error("%s: repository error for stylist=%d: %v", op, stylistID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
