package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/middleware"
)

// MovementPublisher publishes movement-created events to interested consumers.
// Publishing is best effort: a failure is logged and never fails the execution.
type MovementPublisher interface {
	PublishMovementCreated(ctx context.Context, movement domain.Movement) error
}

// executionService performs the balance check, debit and ledger append for a
// single due mandate as one logical operation.
type executionService struct {
	accountRepo  portsrepo.AccountRepository
	movementRepo portsrepo.MovementWriter
	mandateRepo  portsrepo.MandateWriter
	publisher    MovementPublisher
}

// NewExecutionService creates a new ExecutionSvcFacade. publisher may be nil.
func NewExecutionService(accountRepo portsrepo.AccountRepository, movementRepo portsrepo.MovementWriter, mandateRepo portsrepo.MandateWriter, publisher MovementPublisher) portssvc.ExecutionSvcFacade {
	return &executionService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		mandateRepo:  mandateRepo,
		publisher:    publisher,
	}
}

var _ portssvc.ExecutionSvcFacade = (*executionService)(nil)

// ExecuteMandate debits the payer account by the mandate amount, appends the
// ledger movement and records the execution instant on the mandate.
//
// The failure paths before the debit leave no state behind. The debit, the
// ledger append and the last-executed update are three separate store writes;
// a failure between them is returned as an error naming the execution id so
// the gap can be reconciled instead of silently duplicated on the next tick.
func (s *executionService) ExecuteMandate(ctx context.Context, mandate domain.Mandate, now time.Time) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("mandate_id", mandate.MandateID),
		slog.String("mandate_public_id", mandate.PublicID),
	)

	account, err := s.accountRepo.FindAccountByIBAN(ctx, mandate.PayerIBAN)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.AccountNotFoundError{IBAN: mandate.PayerIBAN}
		}
		return nil, fmt.Errorf("failed to resolve payer account %s: %w", mandate.PayerIBAN, err)
	}

	if account.Balance.LessThan(mandate.Amount) {
		return nil, &apperrors.InsufficientFundsError{
			IBAN:     mandate.PayerIBAN,
			Balance:  account.Balance,
			Required: mandate.Amount,
		}
	}

	executionID := uuid.NewString()
	newBalance := account.Balance.Sub(mandate.Amount)

	if err := s.accountRepo.UpdateAccountBalance(ctx, mandate.PayerIBAN, newBalance, now); err != nil {
		return nil, fmt.Errorf("failed to debit account %s (execution %s): %w", mandate.PayerIBAN, executionID, err)
	}

	movement := domain.Movement{
		MovementID:       uuid.NewString(),
		CustomerID:       mandate.CustomerID,
		Kind:             domain.MandateExecution,
		Amount:           mandate.Amount,
		Concept:          fmt.Sprintf("Direct debit: %s", mandate.CreditorName),
		AccountIBAN:      mandate.PayerIBAN,
		CounterpartyIBAN: mandate.CreditorIBAN,
		MandatePublicID:  mandate.PublicID,
		ExecutionID:      executionID,
		CreatedAt:        now,
	}

	if err := s.movementRepo.AppendMovement(ctx, movement); err != nil {
		// The account is already debited. Surface the execution id loudly so
		// the missing ledger entry can be reconciled.
		logger.Error("ledger append failed after debit",
			slog.String("execution_id", executionID),
			slog.String("iban", mandate.PayerIBAN),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("ledger append failed after debit of %s (execution %s): %w", mandate.PayerIBAN, executionID, err)
	}

	if err := s.mandateRepo.SetLastExecuted(ctx, mandate.MandateID, now); err != nil {
		logger.Error("failed to record last execution instant",
			slog.String("execution_id", executionID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record last execution of mandate %s (execution %s): %w", mandate.MandateID, executionID, err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishMovementCreated(ctx, movement); err != nil {
			logger.Warn("failed to publish movement event", slog.String("movement_id", movement.MovementID), slog.String("error", err.Error()))
		}
	}

	logger.Info("mandate executed",
		slog.String("execution_id", executionID),
		slog.String("movement_id", movement.MovementID),
		slog.String("amount", mandate.Amount.String()))

	return &movement, nil
}
