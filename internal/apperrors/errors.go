package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// InsufficientFundsError is the expected, recoverable-on-next-cycle outcome of
// a mandate execution against an account that cannot cover the amount.
// It never advances the mandate's last-executed timestamp.
type InsufficientFundsError struct {
	IBAN     string
	Balance  decimal.Decimal
	Required decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on %s: balance %s, required %s",
		e.IBAN, e.Balance.String(), e.Required.String())
}

// AccountNotFoundError indicates the payer IBAN resolved to no account.
// It is fatal for the mandate this tick but must not abort the run.
type AccountNotFoundError struct {
	IBAN string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account not found for IBAN %s", e.IBAN)
}

func (e *AccountNotFoundError) Unwrap() error {
	return ErrNotFound
}
