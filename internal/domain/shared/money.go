package shared

import "github.com/shopspring/decimal"

// Money columns are decimal(18,2): at most 16 integer digits and 2 places.
const MoneyScale = 2

var maxMoney = decimal.New(1, 16)

// ValidateMoney rejects amounts the money columns cannot hold exactly, so
// what a caller is shown is what the database keeps. what names the amount
// in the message, e.g. "Price".
func ValidateMoney(what string, amount decimal.Decimal) error {
	switch {
	case amount.IsNegative():
		return NewDomainError("INVALID_PRICE", what+" cannot be negative")
	case !amount.Equal(amount.Round(MoneyScale)):
		return NewDomainError("INVALID_PRICE", what+" cannot have more than 2 decimal places")
	case amount.GreaterThanOrEqual(maxMoney):
		return NewDomainError("INVALID_PRICE", what+" must be less than 10000000000000000")
	}
	return nil
}
