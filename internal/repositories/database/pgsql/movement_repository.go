package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	"github.com/finovabank/direct_debit_engine/internal/models"
	"github.com/finovabank/direct_debit_engine/internal/utils/mapping"
	"github.com/finovabank/direct_debit_engine/internal/utils/pagination"
)

type PgxMovementRepository struct {
	pool *pgxpool.Pool
}

// newPgxMovementRepository creates a new repository for the movement ledger.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepository {
	return &PgxMovementRepository{pool: pool}
}

var _ portsrepo.MovementRepository = (*PgxMovementRepository)(nil)

// AppendMovement writes one immutable ledger entry. There is no update or
// delete path for this table.
func (r *PgxMovementRepository) AppendMovement(ctx context.Context, movement domain.Movement) error {
	modelMovement := mapping.ToModelMovement(movement)

	query := `
		INSERT INTO movements (movement_id, customer_id, kind, amount, concept, account_iban,
			counterparty_iban, mandate_public_id, execution_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	var counterparty, mandatePublicID sql.NullString
	if modelMovement.CounterpartyIBAN != "" {
		counterparty = sql.NullString{String: modelMovement.CounterpartyIBAN, Valid: true}
	}
	if modelMovement.MandatePublicID != "" {
		mandatePublicID = sql.NullString{String: modelMovement.MandatePublicID, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.CustomerID,
		modelMovement.Kind,
		modelMovement.Amount,
		modelMovement.Concept,
		modelMovement.AccountIBAN,
		counterparty,
		mandatePublicID,
		modelMovement.ExecutionID,
		modelMovement.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: movement with ID %s already exists", apperrors.ErrDuplicate, modelMovement.MovementID)
		}
		return fmt.Errorf("failed to append movement %s: %w", modelMovement.MovementID, err)
	}
	return nil
}

// ListMovementsByCustomer retrieves a page of a customer's movements, newest
// first, keyed by (created_at, movement_id) for stable pagination.
func (r *PgxMovementRepository) ListMovementsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	query := `
		SELECT movement_id, customer_id, kind, amount, concept, account_iban,
		       counterparty_iban, mandate_public_id, execution_id, created_at
		FROM movements
		WHERE customer_id = $1
	`
	args := []interface{}{customerID}

	if nextToken != nil && *nextToken != "" {
		createdAt, movementID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, movement_id) < ($2, $3)`
		args = append(args, createdAt, movementID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC, movement_id DESC LIMIT %d;`, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list movements for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m models.Movement
		var counterparty, mandatePublicID sql.NullString
		if err := rows.Scan(
			&m.MovementID, &m.CustomerID, &m.Kind, &m.Amount, &m.Concept, &m.AccountIBAN,
			&counterparty, &mandatePublicID, &m.ExecutionID, &m.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		m.CounterpartyIBAN = counterparty.String
		m.MandatePublicID = mandatePublicID.String
		movements = append(movements, mapping.ToDomainMovement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate movement rows: %w", err)
	}

	var token *string
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[len(movements)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.MovementID)
		token = &t
	}

	return movements, token, nil
}
