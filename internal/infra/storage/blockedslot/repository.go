package blockedslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/psqlbuilder"
)

// Repository репозиторий блокировок календаря, привязанный к одной организации
type Repository struct {
	db       DBExecutor
	tenantID domain.TenantID
}

// NewRepository создает репозиторий блокировок организации tenantID
func NewRepository(db DBExecutor, tenantID domain.TenantID) *Repository {
	return &Repository{db: db, tenantID: tenantID}
}

// GetByDate возвращает все блокировки дня, разделённые на блокировки дня целиком и точечные
func (r *Repository) GetByDate(ctx context.Context, day domain.CalendarDay) (*domain.DayBlocks, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"all_day",
		"time",
		"reason",
		"created_at",
	).
		From("blocked_slots").
		Where(squirrel.Eq{
			"organization_id": r.tenantID,
			"date":            day,
		}).
		OrderBy("all_day DESC", "time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := &domain.DayBlocks{}
	for rows.Next() {
		var (
			slot        domain.BlockedSlot
			blockedTime sql.NullString
			reason      sql.NullString
		)

		if err := rows.Scan(&slot.ID, &slot.Date, &slot.AllDay, &blockedTime, &reason, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan: %w", ErrScanRow, err)
		}

		slot.TenantID = r.tenantID
		if blockedTime.Valid {
			slot.Time = &blockedTime.String
		}
		if reason.Valid {
			slot.Reason = &reason.String
		}

		// Запись без времени блокирует день целиком, даже если all_day не выставлен
		if slot.AllDay || slot.Time == nil {
			blocks.AllDay = append(blocks.AllDay, &slot)
		} else {
			blocks.Timed = append(blocks.Timed, &slot)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows iteration: %w", ErrExecQuery, err)
	}

	return blocks, nil
}

// GetAllDayDates возвращает даты с блокировкой на весь день в полуинтервале [from, to)
func (r *Repository) GetAllDayDates(ctx context.Context, from, to domain.CalendarDay) ([]domain.CalendarDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("blocked_slots").
		Where(squirrel.Eq{"organization_id": r.tenantID}).
		Where(squirrel.Or{
			squirrel.Eq{"all_day": true},
			squirrel.Eq{"time": nil},
		}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllDayDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllDayDates - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]domain.CalendarDay, 0)
	for rows.Next() {
		var day domain.CalendarDay
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: GetAllDayDates - scan: %w", ErrScanRow, err)
		}
		dates = append(dates, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllDayDates - rows iteration: %w", ErrExecQuery, err)
	}

	return dates, nil
}

// Create добавляет блокировку. Для блокировки на весь день Time игнорируется
func (r *Repository) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var blockedTime interface{}
	if !slot.AllDay && slot.Time != nil {
		blockedTime = *slot.Time
	}

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("organization_id", "date", "all_day", "time", "reason").
		Values(r.tenantID, slot.Date, slot.AllDay, blockedTime, slot.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slot.TenantID = r.tenantID
	if slot.AllDay {
		slot.Time = nil
	}
	return slot, nil
}

// Delete удаляет блокировку организации
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{
			"id":              id,
			"organization_id": r.tenantID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}
