package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
)

// AggregateModel holds the columns shared by every table: the uuid key,
// the timestamps and the optimistic version counter.
type AggregateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	Version   int       `gorm:"not null;default:1"`
}

func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.ID = a.ID
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
	m.Version = a.Version
}

func (m *AggregateModel) AggregateRoot() shared.BaseAggregateRoot {
	root := shared.BaseAggregateRoot{Version: m.Version}
	root.ID = m.ID
	root.CreatedAt = m.CreatedAt
	root.UpdatedAt = m.UpdatedAt
	return root
}

// All lists the models in foreign-key order for AutoMigrate.
func All() []any {
	return []any{
		&SupplierModel{},
		&ProductModel{},
		&ClientModel{},
		&UserModel{},
		&SaleModel{},
	}
}
