package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database representation of a checking account.
type Account struct {
	AccountID    string          `db:"account_id"`
	CustomerID   string          `db:"customer_id"`
	IBAN         string          `db:"iban"`
	CurrencyCode string          `db:"currency_code"`
	Balance      decimal.Decimal `db:"balance"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
