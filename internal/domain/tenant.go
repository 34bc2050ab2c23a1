package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// TenantID идентификатор организации (институт красоты). Все данные принадлежат ровно одной организации
type TenantID uuid.UUID

// ParseTenantID парсит идентификатор организации из строки
func ParseTenantID(s string) (TenantID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TenantID{}, fmt.Errorf("parse tenant id: %w", err)
	}
	if id == uuid.Nil {
		return TenantID{}, fmt.Errorf("parse tenant id: nil uuid")
	}
	return TenantID(id), nil
}

// NewTenantID генерирует новый идентификатор (используется в тестах и при регистрации организации)
func NewTenantID() TenantID {
	return TenantID(uuid.New())
}

func (t TenantID) String() string {
	return uuid.UUID(t).String()
}

// IsZero возвращает true для нулевого UUID
func (t TenantID) IsZero() bool {
	return uuid.UUID(t) == uuid.Nil
}

// Value реализует driver.Valuer
func (t TenantID) Value() (driver.Value, error) {
	return t.String(), nil
}
