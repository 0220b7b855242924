package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tags the payload of a ledger entry. The engine only ever
// produces MandateExecution; the remaining kinds are written by other parts
// of the backend and read through the same store.
type MovementKind string

const (
	MandateExecution MovementKind = "MANDATE_EXECUTION"
	PayrollCredit    MovementKind = "PAYROLL_CREDIT"
	CardPayment      MovementKind = "CARD_PAYMENT"
	Transfer         MovementKind = "TRANSFER"
)

// Movement is an immutable record ("movimiento") of one completed money
// movement. Once written it is never mutated or deleted by the engine.
type Movement struct {
	MovementID       string          `json:"movementID"` // Primary Key (UUID)
	CustomerID       string          `json:"customerID"` // Owning customer reference
	Kind             MovementKind    `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`           // Minor currency units
	Concept          string          `json:"concept"`          // Human-readable description
	AccountIBAN      string          `json:"accountIBAN"`      // Account the movement applied to
	CounterpartyIBAN string          `json:"counterpartyIBAN"` // Other leg, when known
	MandatePublicID  string          `json:"mandatePublicID"`  // Set for MANDATE_EXECUTION only
	ExecutionID      string          `json:"executionID"`      // Per-attempt idempotency key (UUID)
	CreatedAt        time.Time       `json:"createdAt"`
}
