package partner

import (
	"strings"

	"github.com/loja/backend/internal/domain/shared"
)

// cpfLength is the number of digits of a Brazilian individual taxpayer id
const cpfLength = 11

// Client represents a customer who buys from the store
type Client struct {
	shared.BaseAggregateRoot
	Name  string
	CPF   string // digits only, empty when unknown
	Email string
}

// NewClient creates a new client
func NewClient(name, cpf, email string) (*Client, error) {
	c := &Client{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := c.apply(name, cpf, email); err != nil {
		return nil, err
	}

	c.AddDomainEvent(NewClientCreatedEvent(c))

	return c, nil
}

// Update replaces the client's data
func (c *Client) Update(name, cpf, email string) error {
	if err := c.apply(name, cpf, email); err != nil {
		return err
	}
	c.Touch()
	return nil
}

func (c *Client) apply(name, cpf, email string) error {
	name = strings.TrimSpace(name)
	if err := validatePartnerName(name); err != nil {
		return err
	}
	cpf = shared.OnlyDigits(cpf)
	if cpf != "" && len(cpf) != cpfLength {
		return shared.NewDomainError("INVALID_CPF", "CPF must have 11 digits")
	}
	email = shared.NormalizeEmail(email)
	if err := validateOptionalEmail(email); err != nil {
		return err
	}

	c.Name = name
	c.CPF = cpf
	c.Email = email
	return nil
}

func validatePartnerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validateOptionalEmail(email string) error {
	if email != "" && !shared.IsValidEmail(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
