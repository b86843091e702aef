package catalog

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
)

// Repository репозиторий мастеров и услуг
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetStylist получает мастера вместе со списком его услуг
func (r *Repository) GetStylist(ctx context.Context, id int64) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at").
		From("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylist - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Stylist
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylist - scan stylist: %v", ErrScanRow, err)
	}

	eligibility, err := r.serviceIDsByStylist(ctx, []int64{s.ID})
	if err != nil {
		return nil, err
	}
	s.ServiceIDs = eligibility[s.ID]
	if s.ServiceIDs == nil {
		s.ServiceIDs = []int64{}
	}

	return &s, nil
}

// ListStylists все мастера по имени. Если serviceID != nil, только оказывающие эту услугу.
func (r *Repository) ListStylists(ctx context.Context, serviceID *int64) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("st.id", "st.name", "st.created_at").
		From("stylists st").
		OrderBy("st.name ASC", "st.id ASC")
	if serviceID != nil {
		builder = builder.
			Join("stylist_services ss ON ss.stylist_id = st.id").
			Where(squirrel.Eq{"ss.service_id": *serviceID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStylists - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStylists - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var s domain.Stylist
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListStylists - scan row: %v", ErrScanRow, err)
		}
		stylists = append(stylists, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStylists - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return stylists, nil
	}

	eligibility, err := r.serviceIDsByStylist(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range stylists {
		s.ServiceIDs = eligibility[s.ID]
		if s.ServiceIDs == nil {
			s.ServiceIDs = []int64{}
		}
	}

	return stylists, nil
}

func (r *Repository) serviceIDsByStylist(ctx context.Context, stylistIDs []int64) (map[int64][]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("stylist_id", "service_id").
		From("stylist_services").
		Where(squirrel.Eq{"stylist_id": stylistIDs}).
		OrderBy("stylist_id ASC", "service_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: serviceIDsByStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: serviceIDsByStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]int64, len(stylistIDs))
	for rows.Next() {
		var stylistID, serviceID int64
		if err := rows.Scan(&stylistID, &serviceID); err != nil {
			return nil, fmt.Errorf("%w: serviceIDsByStylist - scan row: %v", ErrScanRow, err)
		}
		result[stylistID] = append(result[stylistID], serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: serviceIDsByStylist - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}

// CreateStylist создаёт мастера и привязывает его услуги.
// Вызывать внутри транзакции, иначе при ошибке привязки мастер останется без услуг.
func (r *Repository) CreateStylist(ctx context.Context, stylist *domain.Stylist) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stylists").
		Columns("name").
		Values(stylist.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateStylist - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&stylist.ID, &stylist.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateStylist - execute insert: %v", ErrExecQuery, err)
	}

	if len(stylist.ServiceIDs) == 0 {
		stylist.ServiceIDs = []int64{}
		return stylist, nil
	}

	insert := psqlbuilder.Insert("stylist_services").Columns("stylist_id", "service_id")
	for _, serviceID := range stylist.ServiceIDs {
		insert = insert.Values(stylist.ID, serviceID)
	}
	query, args, err = insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateStylist - build eligibility insert: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateStylist - execute eligibility insert: %v", ErrExecQuery, err)
	}

	return stylist, nil
}

// DeleteStylist удаляет мастера. Привязки к услугам и блокировки удаляются каскадно,
// у записей мастер обнуляется.
func (r *Repository) DeleteStylist(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteStylist - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteStylist - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteStylist - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStylistNotFound
	}
	return nil
}

// ServiceExists проверяет существование услуги
func (r *Repository) ServiceExists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sub, args, err := psqlbuilder.Select("1").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ServiceExists - build query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ServiceExists - scan: %v", ErrScanRow, err)
	}
	return exists, nil
}

// ListServices все услуги по названию
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "duration_minutes").
		From("services").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}

// StaffOverview мастера с количеством записей на дату (любой статус)
func (r *Repository) StaffOverview(ctx context.Context, date time.Time) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("st.id", "st.name", "COUNT(a.id)").
		From("stylists st").
		LeftJoin("appointments a ON a.stylist_id = st.id AND a.date = ?", date.Format(domain.DateFormat)).
		GroupBy("st.id", "st.name").
		OrderBy("st.name ASC", "st.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: StaffOverview - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: StaffOverview - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]*domain.StaffMember, 0)
	for rows.Next() {
		var m domain.StaffMember
		if err := rows.Scan(&m.StylistID, &m.Name, &m.AppointmentsToday); err != nil {
			return nil, fmt.Errorf("%w: StaffOverview - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: StaffOverview - rows error: %v", ErrScanRow, err)
	}
	return staff, nil
}
