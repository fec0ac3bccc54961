package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/identity"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("find user", err)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email. Emails are stored normalised.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", shared.NormalizeEmail(email)).First(&model).Error; err != nil {
		return nil, translateError("find user by email", err)
	}
	return model.ToDomain(), nil
}

// FindAll finds all users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	var rows []models.UserModel
	query := applySearch(r.db.WithContext(ctx).Model(&models.UserModel{}), filter.Search, "name", "email")
	query = applyPagination(applyOrdering(query, filter, userSortColumns, "name"), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError("list users", err)
	}

	users := make([]identity.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].ToDomain()
	}
	return users, nil
}

// Count counts users matching the filter
func (r *GormUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&models.UserModel{}), filter.Search, "name", "email")
	if err := query.Count(&count).Error; err != nil {
		return 0, translateError("count users", err)
	}
	return count, nil
}

// ExistsByEmail checks if an email is already registered
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", shared.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, translateError("check user email", err)
	}
	return count > 0, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return translateError("save user", r.db.WithContext(ctx).Save(models.UserModelFromDomain(user)).Error)
}

// Delete deletes a user by ID
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.UserModel{}, id, "delete user")
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
