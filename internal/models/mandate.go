package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mandate is the database representation of a standing direct-debit instruction.
type Mandate struct {
	MandateID      string          `db:"mandate_id"`
	PublicID       string          `db:"public_id"`
	CustomerID     string          `db:"customer_id"`
	CreditorName   string          `db:"creditor_name"`
	PayerIBAN      string          `db:"payer_iban"`
	CreditorIBAN   string          `db:"creditor_iban"`
	Amount         decimal.Decimal `db:"amount"`
	Periodicity    string          `db:"periodicity"`
	IsActive       bool            `db:"is_active"`
	StartsAt       time.Time       `db:"starts_at"`
	LastExecutedAt time.Time       `db:"last_executed_at"`
	AuditFields
}
