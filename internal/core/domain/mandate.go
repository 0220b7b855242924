package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodicity defines the repeat interval of a mandate.
// The set is closed: the due-date evaluator matches exhaustively and treats
// any other value as a programming error.
type Periodicity string

const (
	Daily   Periodicity = "DAILY"
	Weekly  Periodicity = "WEEKLY"
	Monthly Periodicity = "MONTHLY"
	Yearly  Periodicity = "YEARLY"
)

// IsValid reports whether p is one of the known periodicities.
func (p Periodicity) IsValid() bool {
	switch p {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Mandate is a standing instruction ("domiciliación") to move a fixed amount
// from a payer account to a creditor on a repeating schedule.
// This is the primary representation used by services.
type Mandate struct {
	MandateID      string          `json:"mandateID"`      // Primary Key (UUID)
	PublicID       string          `json:"publicID"`       // User-facing opaque short token, immutable
	CustomerID     string          `json:"customerID"`     // Payer account reference
	CreditorName   string          `json:"creditorName"`   // Display name of the creditor
	PayerIBAN      string          `json:"payerIBAN"`      // Account the amount is debited from
	CreditorIBAN   string          `json:"creditorIBAN"`   // Creditor/payee account
	Amount         decimal.Decimal `json:"amount"`         // Non-negative, minor currency units
	Periodicity    Periodicity     `json:"periodicity"`    // DAILY, WEEKLY, MONTHLY, YEARLY
	IsActive       bool            `json:"isActive"`       // Cancellation is a flag flip, never a delete
	StartsAt       time.Time       `json:"startsAt"`       // First instant the mandate may run
	LastExecutedAt time.Time       `json:"lastExecutedAt"` // Invariant: LastExecutedAt >= StartsAt
	AuditFields
}
