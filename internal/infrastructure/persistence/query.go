package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loja/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// sortColumns is the set of columns a listing may be ordered by. Anything
// else in Filter.OrderBy falls back to the listing's default column, so the
// value never reaches SQL unchecked.
type sortColumns map[string]bool

func newSortColumns(columns ...string) sortColumns {
	set := sortColumns{"id": true, "created_at": true}
	for _, c := range columns {
		set[c] = true
	}
	return set
}

// column returns requested when whitelisted, fallback otherwise
func (s sortColumns) column(requested, fallback string) string {
	requested = strings.TrimSpace(requested)
	if s[requested] {
		return requested
	}
	return fallback
}

// Sortable columns per listing
var (
	productSortColumns  = newSortColumns("updated_at", "name", "price")
	clientSortColumns   = newSortColumns("updated_at", "name", "cpf", "email")
	supplierSortColumns = newSortColumns("updated_at", "name", "cnpj", "email")
	userSortColumns     = newSortColumns("updated_at", "name", "email")
	saleSortColumns     = newSortColumns("sale_date", "quantity", "unit_price", "invoice_number")
)

// sortDirection is DESC only when asked for explicitly
func sortDirection(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return "DESC"
	}
	return "ASC"
}

// applyOrdering orders by a whitelisted column with id as tie-breaker so
// pages are stable
func applyOrdering(query *gorm.DB, filter shared.Filter, allowed sortColumns, defaultField string) *gorm.DB {
	field := allowed.column(filter.OrderBy, defaultField)
	query = query.Order(field + " " + sortDirection(filter.OrderDir))
	if field != "id" {
		query = query.Order("id ASC")
	}
	return query
}

// applyPagination limits the query when the filter asks for a page
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// applySearch matches the search term case-insensitively against columns.
// LOWER/LIKE keeps the query portable between postgres and sqlite.
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + strings.ToLower(search) + "%"
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(conds, " OR "), args...)
}

// translateError maps storage errors onto domain errors.
// Anything unrecognised is wrapped with op and left for the caller to report as 500.
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.WrapDomainError(shared.ErrAlreadyExists.Code, shared.ErrAlreadyExists.Message, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.WrapDomainError(shared.ErrReferenceInUse.Code, shared.ErrReferenceInUse.Message, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// deleteByID deletes one row of model and reports shared.ErrNotFound when
// nothing was removed, so repeated deletes stay NotFound.
func deleteByID(db *gorm.DB, model any, id any, op string) error {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return translateError(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
