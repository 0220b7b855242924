package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	"github.com/finovabank/direct_debit_engine/internal/models"
	"github.com/finovabank/direct_debit_engine/internal/utils/mapping"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// FindAccountByIBAN resolves an account by its IBAN.
func (r *PgxAccountRepository) FindAccountByIBAN(ctx context.Context, iban string) (*domain.Account, error) {
	query := `
		SELECT account_id, customer_id, iban, currency_code, balance, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE iban = $1;
	`
	var m models.Account
	err := r.pool.QueryRow(ctx, query, iban).Scan(
		&m.AccountID, &m.CustomerID, &m.IBAN, &m.CurrencyCode, &m.Balance, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account with IBAN %s", apperrors.ErrNotFound, iban)
		}
		return nil, fmt.Errorf("failed to find account by IBAN %s: %w", iban, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// UpdateAccountBalance overwrites the balance of the account with the given IBAN.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, iban string, newBalance decimal.Decimal, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $1, last_updated_at = $2
		WHERE iban = $3;
	`
	tag, err := r.pool.Exec(ctx, query, newBalance, now, iban)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %s: %w", iban, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account with IBAN %s", apperrors.ErrNotFound, iban)
	}
	return nil
}
