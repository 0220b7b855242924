package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByIBAN resolves an account by its IBAN.
	// Returns apperrors.ErrNotFound (wrapped) when no account matches.
	FindAccountByIBAN(ctx context.Context, iban string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// UpdateAccountBalance overwrites the balance of the account with the
	// given IBAN. The engine only ever writes balances it has just read and
	// verified; the account service owns every other aspect of the account.
	UpdateAccountBalance(ctx context.Context, iban string, newBalance decimal.Decimal, now time.Time) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
