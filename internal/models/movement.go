package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is the database representation of an immutable ledger entry.
// Nullable columns use empty-string sentinels and are converted at the
// repository boundary.
type Movement struct {
	MovementID       string          `db:"movement_id"`
	CustomerID       string          `db:"customer_id"`
	Kind             string          `db:"kind"`
	Amount           decimal.Decimal `db:"amount"`
	Concept          string          `db:"concept"`
	AccountIBAN      string          `db:"account_iban"`
	CounterpartyIBAN string          `db:"counterparty_iban"`
	MandatePublicID  string          `db:"mandate_public_id"`
	ExecutionID      string          `db:"execution_id"`
	CreatedAt        time.Time       `db:"created_at"`
}
