package services

import (
	"context"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
)

const defaultMovementPageSize = 50

// movementService exposes read access to the movement ledger.
type movementService struct {
	movementRepo portsrepo.MovementReader
}

// NewMovementService creates a new MovementSvcFacade.
func NewMovementService(movementRepo portsrepo.MovementReader) portssvc.MovementSvcFacade {
	return &movementService{movementRepo: movementRepo}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

func (s *movementService) ListMovementsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultMovementPageSize
	}
	return s.movementRepo.ListMovementsByCustomer(ctx, customerID, limit, nextToken)
}
