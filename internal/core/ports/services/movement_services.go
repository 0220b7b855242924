package services

import (
	"context"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

// MovementSvcFacade exposes read access to the movement ledger.
type MovementSvcFacade interface {
	// ListMovementsByCustomer returns a page of a customer's movements,
	// newest first, plus the token for the next page when more exist.
	ListMovementsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Movement, *string, error)
}
