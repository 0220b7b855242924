package repositories

import (
	"context"
	"time"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

// MandateReader defines read operations for mandate data
type MandateReader interface {
	// ListActiveMandates returns every mandate with the active flag set.
	// Order is unspecified; callers must not assume creation order.
	ListActiveMandates(ctx context.Context) ([]domain.Mandate, error)

	// FindMandateByID retrieves a specific mandate by its unique identifier.
	FindMandateByID(ctx context.Context, mandateID string) (*domain.Mandate, error)

	// ListMandatesByCustomer retrieves all mandates debiting a payer customer.
	ListMandatesByCustomer(ctx context.Context, customerID string) ([]domain.Mandate, error)
}

// MandateWriter defines write operations for mandate data
type MandateWriter interface {
	// SaveMandate persists a new mandate.
	SaveMandate(ctx context.Context, mandate domain.Mandate) error

	// SetMandateActive flips the active flag. Cancellation never deletes.
	SetMandateActive(ctx context.Context, mandateID string, active bool, userID string, now time.Time) error

	// SetLastExecuted records the instant of a successful execution.
	SetLastExecuted(ctx context.Context, mandateID string, executedAt time.Time) error
}

// MandateRepository combines all mandate-related repository interfaces.
type MandateRepository interface {
	MandateReader
	MandateWriter
}
