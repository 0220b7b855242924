package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a checking account referenced, not owned, by the engine.
// The engine reads the balance and, if sufficient, writes a new lower one;
// account lifecycle belongs to the account service.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID)
	CustomerID   string          `json:"customerID"`   // Owning customer reference
	IBAN         string          `json:"iban"`         // Unique account identifier
	CurrencyCode string          `json:"currencyCode"` // ISO 4217
	Balance      decimal.Decimal `json:"balance"`      // Non-negative, minor currency units
	IsActive     bool            `json:"isActive"`
	AuditFields
}
