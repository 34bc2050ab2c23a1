package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректном ключе
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибке хранилища
	ErrInternal = errors.New("reminders: internal error")
)

// DeliveryRepository журнал отправок одной организации
type DeliveryRepository interface {
	Claim(ctx context.Context, entityID int64, kind domain.ReminderKind) (bool, error)
}

// RepositoryFactory привязывает журнал к организации
type RepositoryFactory func(tenantID domain.TenantID) DeliveryRepository

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Ledger ключи идемпотентности напоминаний. Внешний воркер рассылки
// сначала забирает ключ (организация, сущность, тип) и отправляет только если Claim вернул true
type Ledger struct {
	repos  RepositoryFactory
	logger Logger
}

// NewLedger создает журнал напоминаний
func NewLedger(repos RepositoryFactory, logger Logger) *Ledger {
	return &Ledger{repos: repos, logger: logger}
}

// Claim резервирует отправку напоминания kind по сущности entityID.
// false - напоминание уже было отправлено (или забрано другим воркером)
func (l *Ledger) Claim(ctx context.Context, tenantID domain.TenantID, entityID int64, kind domain.ReminderKind) (bool, error) {
	if entityID <= 0 {
		return false, fmt.Errorf("%w: entity id must be positive", ErrInvalidInput)
	}
	if !domain.IsValidReminderKind(kind) {
		return false, fmt.Errorf("%w: unknown reminder kind %q", ErrInvalidInput, kind)
	}

	claimed, err := l.repos(tenantID).Claim(ctx, entityID, kind)
	if err != nil {
		l.logger.Error("Claim: tenant=%s, entity=%d, kind=%s: %v", tenantID, entityID, kind, err)
		return false, fmt.Errorf("%w: Claim - repository error: %v", ErrInternal, err)
	}

	if !claimed {
		l.logger.Info("Claim: tenant=%s, entity=%d, kind=%s already sent", tenantID, entityID, kind)
		return false, nil
	}

	l.logger.Info("Claim: tenant=%s, entity=%d, kind=%s claimed", tenantID, entityID, kind)
	return true, nil
}
