package repositories

import (
	"context"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

// MovementWriter defines write operations for the movement ledger
type MovementWriter interface {
	// AppendMovement writes one immutable ledger entry. Entries are never
	// mutated or deleted afterwards.
	AppendMovement(ctx context.Context, movement domain.Movement) error
}

// MovementReader defines read operations for the movement ledger
type MovementReader interface {
	// ListMovementsByCustomer retrieves a customer's movements, newest first,
	// with token-based pagination.
	ListMovementsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Movement, *string, error)
}

// MovementRepository combines all movement-related repository interfaces.
type MovementRepository interface {
	MovementWriter
	MovementReader
}
