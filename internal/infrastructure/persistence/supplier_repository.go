package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/partner"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("find supplier", err)
	}
	return model.ToDomain(), nil
}

// FindAll finds all suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	var rows []models.SupplierModel
	query := applySearch(r.db.WithContext(ctx).Model(&models.SupplierModel{}), filter.Search, "name", "email", "cnpj")
	query = applyPagination(applyOrdering(query, filter, supplierSortColumns, "name"), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError("list suppliers", err)
	}

	suppliers := make([]partner.Supplier, len(rows))
	for i := range rows {
		suppliers[i] = *rows[i].ToDomain()
	}
	return suppliers, nil
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&models.SupplierModel{}), filter.Search, "name", "email", "cnpj")
	if err := query.Count(&count).Error; err != nil {
		return 0, translateError("count suppliers", err)
	}
	return count, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return translateError("save supplier", r.db.WithContext(ctx).Save(models.SupplierModelFromDomain(supplier)).Error)
}

// Delete deletes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.SupplierModel{}, id, "delete supplier")
}

// ExistsByID checks if a supplier exists
func (r *GormSupplierRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SupplierModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError("check supplier", err)
	}
	return count > 0, nil
}

var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
