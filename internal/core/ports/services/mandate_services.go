package services

import (
	"context"
	"time"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	"github.com/finovabank/direct_debit_engine/internal/dto"
)

// MandateSvcFacade exposes the administrative mandate operations used by the
// HTTP handlers. The scheduler never goes through this facade.
type MandateSvcFacade interface {
	// CreateMandate validates and persists a new mandate.
	CreateMandate(ctx context.Context, req dto.CreateMandateRequest, creatorUserID string) (*domain.Mandate, error)

	// ListMandatesByCustomer returns all mandates debiting the given customer.
	ListMandatesByCustomer(ctx context.Context, customerID string) ([]domain.Mandate, error)

	// SetMandateActive flips the active flag and returns the updated mandate.
	SetMandateActive(ctx context.Context, mandateID string, active bool, updaterUserID string) (*domain.Mandate, error)
}

// ExecutionSvcFacade is the execution engine contract: one due mandate in,
// one movement out, or a classified error. Implementations must leave no
// partial state behind a failed sufficiency check.
type ExecutionSvcFacade interface {
	ExecuteMandate(ctx context.Context, mandate domain.Mandate, now time.Time) (*domain.Movement, error)
}
