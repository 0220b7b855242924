package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	"github.com/finovabank/direct_debit_engine/internal/models"
	"github.com/finovabank/direct_debit_engine/internal/utils/mapping"
)

type PgxMandateRepository struct {
	pool *pgxpool.Pool
}

// newPgxMandateRepository creates a new repository for mandate data.
func newPgxMandateRepository(pool *pgxpool.Pool) portsrepo.MandateRepository {
	return &PgxMandateRepository{pool: pool}
}

var _ portsrepo.MandateRepository = (*PgxMandateRepository)(nil)

const mandateColumns = `mandate_id, public_id, customer_id, creditor_name, payer_iban, creditor_iban,
	amount, periodicity, is_active, starts_at, last_executed_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMandate(row pgx.Row) (models.Mandate, error) {
	var m models.Mandate
	err := row.Scan(
		&m.MandateID, &m.PublicID, &m.CustomerID, &m.CreditorName, &m.PayerIBAN, &m.CreditorIBAN,
		&m.Amount, &m.Periodicity, &m.IsActive, &m.StartsAt, &m.LastExecutedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveMandate inserts a new mandate.
func (r *PgxMandateRepository) SaveMandate(ctx context.Context, mandate domain.Mandate) error {
	modelMandate := mapping.ToModelMandate(mandate)

	query := `
		INSERT INTO mandates (` + mandateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		modelMandate.MandateID,
		modelMandate.PublicID,
		modelMandate.CustomerID,
		modelMandate.CreditorName,
		modelMandate.PayerIBAN,
		modelMandate.CreditorIBAN,
		modelMandate.Amount,
		modelMandate.Periodicity,
		modelMandate.IsActive,
		modelMandate.StartsAt,
		modelMandate.LastExecutedAt,
		modelMandate.CreatedAt,
		modelMandate.CreatedBy,
		modelMandate.LastUpdatedAt,
		modelMandate.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: mandate with ID %s already exists", apperrors.ErrDuplicate, modelMandate.MandateID)
		}
		return fmt.Errorf("failed to save mandate %s: %w", modelMandate.MandateID, err)
	}
	return nil
}

// FindMandateByID retrieves a specific mandate by its unique identifier.
func (r *PgxMandateRepository) FindMandateByID(ctx context.Context, mandateID string) (*domain.Mandate, error) {
	query := `SELECT ` + mandateColumns + ` FROM mandates WHERE mandate_id = $1;`

	m, err := scanMandate(r.pool.QueryRow(ctx, query, mandateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: mandate %s", apperrors.ErrNotFound, mandateID)
		}
		return nil, fmt.Errorf("failed to find mandate %s: %w", mandateID, err)
	}

	mandate := mapping.ToDomainMandate(m)
	return &mandate, nil
}

// ListActiveMandates returns every mandate with the active flag set.
func (r *PgxMandateRepository) ListActiveMandates(ctx context.Context) ([]domain.Mandate, error) {
	query := `SELECT ` + mandateColumns + ` FROM mandates WHERE is_active = TRUE;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active mandates: %w", err)
	}
	defer rows.Close()

	return collectMandates(rows)
}

// ListMandatesByCustomer retrieves all mandates debiting a payer customer.
func (r *PgxMandateRepository) ListMandatesByCustomer(ctx context.Context, customerID string) ([]domain.Mandate, error) {
	query := `SELECT ` + mandateColumns + ` FROM mandates WHERE customer_id = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mandates for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	return collectMandates(rows)
}

func collectMandates(rows pgx.Rows) ([]domain.Mandate, error) {
	var mandates []domain.Mandate
	for rows.Next() {
		m, err := scanMandate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mandate row: %w", err)
		}
		mandates = append(mandates, mapping.ToDomainMandate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mandate rows: %w", err)
	}
	return mandates, nil
}

// SetLastExecuted records the instant of a successful execution.
func (r *PgxMandateRepository) SetLastExecuted(ctx context.Context, mandateID string, executedAt time.Time) error {
	query := `
		UPDATE mandates
		SET last_executed_at = $1, last_updated_at = $1
		WHERE mandate_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, executedAt, mandateID)
	if err != nil {
		return fmt.Errorf("failed to set last execution of mandate %s: %w", mandateID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: mandate %s", apperrors.ErrNotFound, mandateID)
	}
	return nil
}

// SetMandateActive flips the active flag.
func (r *PgxMandateRepository) SetMandateActive(ctx context.Context, mandateID string, active bool, userID string, now time.Time) error {
	query := `
		UPDATE mandates
		SET is_active = $1, last_updated_at = $2, last_updated_by = $3
		WHERE mandate_id = $4;
	`
	tag, err := r.pool.Exec(ctx, query, active, now, userID, mandateID)
	if err != nil {
		return fmt.Errorf("failed to update active flag of mandate %s: %w", mandateID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: mandate %s", apperrors.ErrNotFound, mandateID)
	}
	return nil
}
