package appointment

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

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Колонки для выборок с денормализованными именами
var listColumns = []string{
	"a.id",
	"a.client_id",
	"a.service_id",
	"a.stylist_id",
	"a.date",
	"a.time",
	"a.status",
	"a.notes",
	"a.created_at",
	"a.updated_at",
	"c.name",
	"s.name",
	"st.name",
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(listColumns...).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		Join("services s ON s.id = a.service_id").
		LeftJoin("stylists st ON st.id = a.stylist_id")
}

// LockSlot берёт транзакционную advisory-блокировку на слот (мастер, дата, время).
// Конкурирующие бронирования одного слота выполняются строго по очереди;
// блокировка снимается при завершении транзакции. Вне транзакции бесполезна.
func (r *Repository) LockSlot(ctx context.Context, stylistID int64, date time.Time, t types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := fmt.Sprintf("slot:%d:%s:%s", stylistID, date.Format(domain.DateFormat), t)
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockSlot - acquire %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

// Create создает новую запись.
// Нарушение частичного уникального индекса (stylist_id, date, time) возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"service_id",
			"stylist_id",
			"date",
			"time",
			"status",
			"notes",
		).
		Values(
			appt.ClientID,
			appt.ServiceID,
			appt.StylistID,
			appt.Date.Format(domain.DateFormat),
			appt.Time,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrSlotTaken
	}
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, foreignKeyError(err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID. Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectAppointments().Where(squirrel.Eq{"a.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListByClient история записей клиента, сначала новые
func (r *Repository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.client_id": clientID}).
		OrderBy("a.date DESC", "a.time DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByStatuses записи с указанными статусами, сначала ближайшие
func (r *Repository) ListByStatuses(ctx context.Context, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.status": statusStrings}).
		OrderBy("a.date ASC", "a.time ASC", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatuses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatuses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// OccupiedTimes времена активных (pending/confirmed) записей мастера на дату
func (r *Repository) OccupiedTimes(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time").
		From("appointments").
		Where(squirrel.Eq{
			"stylist_id": stylistID,
			"date":       date.Format(domain.DateFormat),
			"status":     domain.ActiveStatusStrings(),
		}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: OccupiedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupiedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// UpdateStatus обновляет статус записи.
// Возврат отменённой записи в активный статус может упереться в уникальный индекс слота (ErrSlotTaken).
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsUniqueViolation(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// Cancel переводит запись в cancelled, причина сохраняется в notes
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("notes", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Cancel")
}

// Delete физически удаляет запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

// CountByStatus количество записей со статусом; если date != nil, только на эту дату
func (r *Repository) CountByStatus(ctx context.Context, status domain.AppointmentStatus, date *time.Time) (int, error) {
	where := squirrel.Eq{"status": status}
	if date != nil {
		where["date"] = date.Format(domain.DateFormat)
	}
	return r.count(ctx, "CountByStatus", where)
}

// CountByStatusInRange количество записей со статусом в полуинтервале дат [from, to)
func (r *Repository) CountByStatusInRange(ctx context.Context, status domain.AppointmentStatus, from, to time.Time) (int, error) {
	return r.count(ctx, "CountByStatusInRange", squirrel.And{
		squirrel.Eq{"status": status},
		squirrel.GtOrEq{"date": from.Format(domain.DateFormat)},
		squirrel.Lt{"date": to.Format(domain.DateFormat)},
	})
}

// CountByStatusBetween количество записей по статусам в закрытом интервале дат [from, to]
func (r *Repository) CountByStatusBetween(ctx context.Context, from, to time.Time) (domain.SatisfactionCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	var counts domain.SatisfactionCounts

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("appointments").
		Where(squirrel.And{
			squirrel.GtOrEq{"date": from.Format(domain.DateFormat)},
			squirrel.LtOrEq{"date": to.Format(domain.DateFormat)},
		}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return counts, fmt.Errorf("%w: CountByStatusBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return counts, fmt.Errorf("%w: CountByStatusBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status domain.AppointmentStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return counts, fmt.Errorf("%w: CountByStatusBetween - scan row: %v", ErrScanRow, err)
		}
		switch status {
		case domain.StatusConfirmed:
			counts.Confirmed = n
		case domain.StatusCancelled:
			counts.Cancelled = n
		case domain.StatusPending:
			counts.Pending = n
		}
	}
	if err := rows.Err(); err != nil {
		return counts, fmt.Errorf("%w: CountByStatusBetween - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

func (r *Repository) count(ctx context.Context, op string, where squirrel.Sqlizer) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build count query: %v", ErrBuildQuery, op, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}
	return n, nil
}

// foreignKeyError сопоставляет имя нарушенного ограничения с ошибкой репозитория
func foreignKeyError(err error) error {
	switch pgerrors.Constraint(err) {
	case "appointments_client_id_fkey":
		return ErrClientNotFound
	case "appointments_service_id_fkey":
		return ErrServiceNotFound
	case "appointments_stylist_id_fkey":
		return ErrStylistNotFound
	}
	return fmt.Errorf("%w: foreign key violation: %v", ErrExecQuery, err)
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.ServiceID,
		&appt.StylistID,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.Notes,
		&createdAt,
		&updatedAt,
		&appt.ClientName,
		&appt.ServiceName,
		&appt.StylistName,
	)
	if err != nil {
		return nil, err
	}

	appt.Date = domain.DateOnly(appt.Date)
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
