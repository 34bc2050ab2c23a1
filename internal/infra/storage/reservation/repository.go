package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/psqlbuilder"
)

// Repository репозиторий бронирований, привязанный к одной организации
type Repository struct {
	db       DBExecutor
	tenantID domain.TenantID
}

// NewRepository создает репозиторий бронирований организации tenantID
func NewRepository(db DBExecutor, tenantID domain.TenantID) *Repository {
	return &Repository{db: db, tenantID: tenantID}
}

// GetActiveByDate возвращает бронирования дня в статусах pending/confirmed вместе с услугами.
// Услуга, удалённая из каталога, возвращается с DurationMinutes = 0.
//
// Если в контексте есть транзакция, строки бронирований блокируются (FOR UPDATE):
// так create_reservation не даст двум клиентам занять один слот
func (r *Repository) GetActiveByDate(ctx context.Context, day domain.CalendarDay) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"r.id",
		"r.time",
		"r.status",
		"rs.service_id",
		"s.duration_minutes",
	).
		From("reservations r").
		LeftJoin("reservation_services rs ON rs.reservation_id = r.id").
		LeftJoin("services s ON s.id = rs.service_id AND s.organization_id = r.organization_id").
		Where(squirrel.Eq{"r.organization_id": r.tenantID}).
		Where(squirrel.Eq{"r.date": day}).
		Where(squirrel.Eq{"r.status": activeStatuses()}).
		OrderBy("r.time ASC", "r.id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	// Строки приходят по одной на услугу, собираем их обратно в бронирования
	result := make([]*domain.Reservation, 0)
	byID := make(map[int64]*domain.Reservation)

	for rows.Next() {
		var (
			id        int64
			reserved  domain.Reservation
			serviceID sql.NullInt64
			duration  sql.NullInt64
		)

		if err := rows.Scan(&id, &reserved.Time, &reserved.Status, &serviceID, &duration); err != nil {
			return nil, fmt.Errorf("%w: GetActiveByDate - scan: %w", ErrScanRow, err)
		}

		current, ok := byID[id]
		if !ok {
			reserved.ID = id
			reserved.TenantID = r.tenantID
			reserved.Date = day
			current = &reserved
			byID[id] = current
			result = append(result, current)
		}

		if serviceID.Valid {
			current.Services = append(current.Services, domain.ReservedService{
				ServiceID:       serviceID.Int64,
				DurationMinutes: int(duration.Int64),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - rows iteration: %w", ErrExecQuery, err)
	}

	return result, nil
}

// GetByID получает бронирование организации по ID вместе с услугами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"date",
		"time",
		"status",
		"customer_name",
		"customer_email",
		"customer_phone",
		"notes",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"organization_id": r.tenantID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		res                 domain.Reservation
		email, phone, notes sql.NullString
		cancellationReason  sql.NullString
		cancelledAt         sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Date,
		&res.Time,
		&res.Status,
		&res.CustomerName,
		&email,
		&phone,
		&notes,
		&cancellationReason,
		&cancelledAt,
		&res.CreatedAt,
		&res.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	res.TenantID = r.tenantID
	res.CustomerEmail = nullString(email)
	res.CustomerPhone = nullString(phone)
	res.Notes = nullString(notes)
	res.CancellationReason = nullString(cancellationReason)
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}

	services, err := r.getServices(ctx, executor, res.ID)
	if err != nil {
		return nil, err
	}
	res.Services = services

	return &res, nil
}

// Create создает бронирование и его связи с услугами.
// Вызывать внутри транзакции: две вставки должны примениться вместе
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"organization_id",
			"date",
			"time",
			"status",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
		).
		Values(
			r.tenantID,
			res.Date,
			res.Time,
			res.Status,
			res.CustomerName,
			res.CustomerEmail,
			res.CustomerPhone,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	res.TenantID = r.tenantID

	if len(res.Services) == 0 {
		return res, nil
	}

	linkBuilder := psqlbuilder.Insert("reservation_services").
		Columns("reservation_id", "service_id")
	for _, s := range res.Services {
		linkBuilder = linkBuilder.Values(res.ID, s.ServiceID)
	}

	query, args, err = linkBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build services insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - insert services: %w", ErrExecQuery, err)
	}

	return res, nil
}

// Cancel переводит активное бронирование в статус cancelled.
// Возвращает ErrReservationNotFound, если бронирования нет у организации,
// и ErrCannotCancel, если оно уже не активно
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"organization_id": r.tenantID}).
		Where(squirrel.Eq{"status": activeStatuses()}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "нет такого" и "уже не активно"
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrCannotCancel
	}

	return nil
}

func (r *Repository) getServices(ctx context.Context, executor DBExecutor, reservationID int64) ([]domain.ReservedService, error) {
	query, args, err := psqlbuilder.Select("rs.service_id", "s.duration_minutes").
		From("reservation_services rs").
		LeftJoin("services s ON s.id = rs.service_id AND s.organization_id = ?", r.tenantID).
		Where(squirrel.Eq{"rs.reservation_id": reservationID}).
		OrderBy("rs.service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getServices - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.ReservedService, 0)
	for rows.Next() {
		var (
			serviceID int64
			duration  sql.NullInt64
		)
		if err := rows.Scan(&serviceID, &duration); err != nil {
			return nil, fmt.Errorf("%w: getServices - scan: %w", ErrScanRow, err)
		}
		services = append(services, domain.ReservedService{
			ServiceID:       serviceID,
			DurationMinutes: int(duration.Int64),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getServices - rows iteration: %w", ErrExecQuery, err)
	}

	return services, nil
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
