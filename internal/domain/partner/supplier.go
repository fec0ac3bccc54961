package partner

import (
	"strings"

	"github.com/loja/backend/internal/domain/shared"
)

// cnpjLength is the number of digits of a Brazilian company registration id
const cnpjLength = 14

// Supplier represents a company the store buys products from
type Supplier struct {
	shared.BaseAggregateRoot
	Name  string
	CNPJ  string // digits only, empty when unknown
	Email string
	Phone string
}

// NewSupplier creates a new supplier
func NewSupplier(name, cnpj, email, phone string) (*Supplier, error) {
	s := &Supplier{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := s.apply(name, cnpj, email, phone); err != nil {
		return nil, err
	}

	s.AddDomainEvent(NewSupplierCreatedEvent(s))

	return s, nil
}

// Update replaces the supplier's data
func (s *Supplier) Update(name, cnpj, email, phone string) error {
	if err := s.apply(name, cnpj, email, phone); err != nil {
		return err
	}
	s.Touch()
	return nil
}

func (s *Supplier) apply(name, cnpj, email, phone string) error {
	name = strings.TrimSpace(name)
	if err := validatePartnerName(name); err != nil {
		return err
	}
	cnpj = shared.OnlyDigits(cnpj)
	if cnpj != "" && len(cnpj) != cnpjLength {
		return shared.NewDomainError("INVALID_CNPJ", "CNPJ must have 14 digits")
	}
	email = shared.NormalizeEmail(email)
	if err := validateOptionalEmail(email); err != nil {
		return err
	}
	phone = strings.TrimSpace(phone)
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	s.Name = name
	s.CNPJ = cnpj
	s.Email = email
	s.Phone = phone
	return nil
}
