package middleware

import (
	"context"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// TenantHeader заголовок с идентификатором организации. Проставляется шлюзом после аутентификации
const TenantHeader = "X-Organization-ID"

const (
	msgMissingTenant = "заголовок X-Organization-ID обязателен"
	msgInvalidTenant = "некорректный X-Organization-ID, ожидается UUID"
)

type contextKey int

const (
	tenantIDKey contextKey = iota
	requestIDKey
)

// Tenant извлекает организацию из заголовка и кладёт её в контекст.
// Без организации запрос дальше не пропускается
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(TenantHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingTenant)
			return
		}

		tenantID, err := domain.ParseTenantID(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidTenant)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithTenantID(r.Context(), tenantID)))
	})
}

// WithTenantID кладёт организацию в контекст
func WithTenantID(ctx context.Context, tenantID domain.TenantID) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// GetTenantID достаёт организацию из контекста
func GetTenantID(ctx context.Context) (domain.TenantID, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(domain.TenantID)
	if !ok || tenantID.IsZero() {
		return domain.TenantID{}, false
	}
	return tenantID, true
}
