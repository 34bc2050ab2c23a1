package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/psqlbuilder"
)

// Repository каталог услуг организации
type Repository struct {
	db       DBExecutor
	tenantID domain.TenantID
}

// NewRepository создает репозиторий каталога организации tenantID
func NewRepository(db DBExecutor, tenantID domain.TenantID) *Repository {
	return &Repository{db: db, tenantID: tenantID}
}

// GetByIDs возвращает услуги организации с указанными ID.
// Отсутствующие ID просто не попадают в результат, проверка - на стороне вызывающего
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.CatalogService, error) {
	if len(ids) == 0 {
		return []*domain.CatalogService{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"organization_id": r.tenantID}).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.CatalogService, 0, len(ids))
	for rows.Next() {
		var s domain.CatalogService
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan: %w", ErrScanRow, err)
		}
		s.TenantID = r.tenantID
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows iteration: %w", ErrExecQuery, err)
	}

	return services, nil
}
