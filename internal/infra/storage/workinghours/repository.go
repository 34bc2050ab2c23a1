package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"organization_id",
	"day_of_week",
	"is_open",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий часов работы, привязанный к одной организации.
// Каждый запрос фильтруется по organization_id, переданному при создании
type Repository struct {
	db       DBExecutor
	tenantID domain.TenantID
}

// NewRepository создает репозиторий часов работы организации tenantID
func NewRepository(db DBExecutor, tenantID domain.TenantID) *Repository {
	return &Repository{db: db, tenantID: tenantID}
}

// GetByWeekday возвращает часы работы на день недели.
// Если день не настроен - ErrWorkingHoursNotFound
func (r *Repository) GetByWeekday(ctx context.Context, weekday time.Weekday) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("working_hours").
		Where(squirrel.Eq{
			"organization_id": r.tenantID,
			"day_of_week":     int(weekday),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	hours, err := scanWorkingHours(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkingHoursNotFound
		}
		return nil, fmt.Errorf("%w: GetByWeekday - scan: %w", ErrScanRow, err)
	}

	return hours, nil
}

// GetAll возвращает недельное расписание организации, отсортированное по дню недели
func (r *Repository) GetAll(ctx context.Context) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("working_hours").
		Where(squirrel.Eq{"organization_id": r.tenantID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHours, 0, 7)
	for rows.Next() {
		hours, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan: %w", ErrScanRow, err)
		}
		result = append(result, hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows iteration: %w", ErrExecQuery, err)
	}

	return result, nil
}

// Upsert создает или обновляет часы работы на день недели
func (r *Repository) Upsert(ctx context.Context, hours *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("organization_id", "day_of_week", "is_open", "start_time", "end_time").
		Values(r.tenantID, int(hours.DayOfWeek), hours.IsOpen, hours.StartTime, hours.EndTime).
		Suffix(`ON CONFLICT (organization_id, day_of_week) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&hours.ID, &hours.CreatedAt, &hours.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	hours.TenantID = r.tenantID
	return hours, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingHours(row rowScanner) (*domain.WorkingHours, error) {
	var (
		hours     domain.WorkingHours
		orgID     string
		dayOfWeek int
	)

	err := row.Scan(
		&hours.ID,
		&orgID,
		&dayOfWeek,
		&hours.IsOpen,
		&hours.StartTime,
		&hours.EndTime,
		&hours.CreatedAt,
		&hours.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tenantID, err := domain.ParseTenantID(orgID)
	if err != nil {
		return nil, err
	}

	hours.TenantID = tenantID
	hours.DayOfWeek = time.Weekday(dayOfWeek)
	return &hours, nil
}
