package reminder

import (
	"context"
	"fmt"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/psqlbuilder"
)

// Repository журнал отправленных напоминаний организации.
// Первичный ключ (organization_id, entity_id, kind) и есть ключ идемпотентности
type Repository struct {
	db       DBExecutor
	tenantID domain.TenantID
}

// NewRepository создает журнал напоминаний организации tenantID
func NewRepository(db DBExecutor, tenantID domain.TenantID) *Repository {
	return &Repository{db: db, tenantID: tenantID}
}

// Claim записывает отправку. Возвращает false, если такая запись уже была
func (r *Repository) Claim(ctx context.Context, entityID int64, kind domain.ReminderKind) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reminder_deliveries").
		Columns("organization_id", "entity_id", "kind").
		Values(r.tenantID, entityID, string(kind)).
		Suffix("ON CONFLICT (organization_id, entity_id, kind) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Claim - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Claim - execute insert: %w", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Claim - get rows affected: %w", ErrExecQuery, err)
	}

	return inserted == 1, nil
}
