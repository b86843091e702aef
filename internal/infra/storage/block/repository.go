package block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/pgerrors"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
	"github.com/m04kA/salon-booking/pkg/types"
)

// Repository репозиторий блокировок дней и слотов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateDay блокирует день мастера.
// Повторная блокировка того же дня не создаёт дубликат: возвращается существующая строка (created = false).
func (r *Repository) CreateDay(ctx context.Context, day *domain.BlockedDay) (*domain.BlockedDay, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	date := day.Date.Format(domain.DateFormat)

	query, args, err := psqlbuilder.Insert("blocked_days").
		Columns("stylist_id", "date", "reason").
		Values(day.StylistID, date, day.Reason).
		Suffix("ON CONFLICT (stylist_id, date) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateDay - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &day.CreatedAt)
	switch {
	case err == nil:
		return day, true, nil
	case pgerrors.IsForeignKeyViolation(err):
		return nil, false, ErrStylistNotFound
	case !errors.Is(err, sql.ErrNoRows):
		return nil, false, fmt.Errorf("%w: CreateDay - execute insert: %v", ErrExecQuery, err)
	}

	// Конфликт: день уже заблокирован
	query, args, err = psqlbuilder.Select("id", "reason", "created_at").
		From("blocked_days").
		Where(squirrel.Eq{"stylist_id": day.StylistID, "date": date}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateDay - build select query: %v", ErrBuildQuery, err)
	}

	existing := &domain.BlockedDay{StylistID: day.StylistID, Date: day.Date}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&existing.ID, &existing.Reason, &existing.CreatedAt); err != nil {
		return nil, false, fmt.Errorf("%w: CreateDay - scan existing: %v", ErrScanRow, err)
	}
	return existing, false, nil
}

// CreateSlot блокирует слот мастера. Идемпотентна так же, как CreateDay.
func (r *Repository) CreateSlot(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	date := slot.Date.Format(domain.DateFormat)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("stylist_id", "date", "time", "reason").
		Values(slot.StylistID, date, slot.Time, slot.Reason).
		Suffix("ON CONFLICT (stylist_id, date, time) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateSlot - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt)
	switch {
	case err == nil:
		return slot, true, nil
	case pgerrors.IsForeignKeyViolation(err):
		return nil, false, ErrStylistNotFound
	case !errors.Is(err, sql.ErrNoRows):
		return nil, false, fmt.Errorf("%w: CreateSlot - execute insert: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Select("id", "reason", "created_at").
		From("blocked_slots").
		Where(squirrel.Eq{"stylist_id": slot.StylistID, "date": date, "time": slot.Time}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateSlot - build select query: %v", ErrBuildQuery, err)
	}

	existing := &domain.BlockedSlot{StylistID: slot.StylistID, Date: slot.Date, Time: slot.Time}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&existing.ID, &existing.Reason, &existing.CreatedAt); err != nil {
		return nil, false, fmt.Errorf("%w: CreateSlot - scan existing: %v", ErrScanRow, err)
	}
	return existing, false, nil
}

// DeleteDay снимает блокировку дня. Отсутствие строки ошибкой не считается.
func (r *Repository) DeleteDay(ctx context.Context, id int64) (bool, error) {
	return r.delete(ctx, "blocked_days", id)
}

// DeleteSlot снимает блокировку слота. Отсутствие строки ошибкой не считается.
func (r *Repository) DeleteSlot(ctx context.Context, id int64) (bool, error) {
	return r.delete(ctx, "blocked_slots", id)
}

func (r *Repository) delete(ctx context.Context, table string, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: delete %s - build query: %v", ErrBuildQuery, table, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: delete %s - execute: %v", ErrExecQuery, table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete %s - get rows affected: %v", ErrExecQuery, table, err)
	}
	return rowsAffected > 0, nil
}

// IsDayBlocked проверяет наличие блокировки дня
func (r *Repository) IsDayBlocked(ctx context.Context, stylistID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sub, args, err := psqlbuilder.Select("1").
		From("blocked_days").
		Where(squirrel.Eq{"stylist_id": stylistID, "date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsDayBlocked - build query: %v", ErrBuildQuery, err)
	}

	var blocked bool
	if err := executor.QueryRowContext(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&blocked); err != nil {
		return false, fmt.Errorf("%w: IsDayBlocked - scan: %v", ErrScanRow, err)
	}
	return blocked, nil
}

// BlockedTimes заблокированные времена мастера на дату
func (r *Repository) BlockedTimes(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error) {
	slots, err := r.ListSlots(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	times := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	return times, nil
}

// ListDays все блокировки дней мастера по возрастанию даты
func (r *Repository) ListDays(ctx context.Context, stylistID int64) ([]*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "stylist_id", "date", "reason", "created_at").
		From("blocked_days").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.BlockedDay, 0)
	for rows.Next() {
		var d domain.BlockedDay
		if err := rows.Scan(&d.ID, &d.StylistID, &d.Date, &d.Reason, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListDays - scan row: %v", ErrScanRow, err)
		}
		d.Date = domain.DateOnly(d.Date)
		days = append(days, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDays - rows error: %v", ErrScanRow, err)
	}
	return days, nil
}

// ListSlots блокировки слотов мастера на дату по возрастанию времени
func (r *Repository) ListSlots(ctx context.Context, stylistID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "stylist_id", "date", "time", "reason", "created_at").
		From("blocked_slots").
		Where(squirrel.Eq{"stylist_id": stylistID, "date": date.Format(domain.DateFormat)}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var s domain.BlockedSlot
		if err := rows.Scan(&s.ID, &s.StylistID, &s.Date, &s.Time, &s.Reason, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListSlots - scan row: %v", ErrScanRow, err)
		}
		s.Date = domain.DateOnly(s.Date)
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlots - rows error: %v", ErrScanRow, err)
	}
	return slots, nil
}
