package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/dto"
	"github.com/finovabank/direct_debit_engine/internal/middleware"
	"github.com/finovabank/direct_debit_engine/internal/utils"
)

// publicIDBytes is the raw length of the user-facing mandate token (hex encoded).
const publicIDBytes = 6

// mandateService provides the administrative mandate operations.
type mandateService struct {
	mandateRepo portsrepo.MandateRepository
}

// NewMandateService creates a new MandateSvcFacade.
func NewMandateService(mandateRepo portsrepo.MandateRepository) portssvc.MandateSvcFacade {
	return &mandateService{mandateRepo: mandateRepo}
}

var _ portssvc.MandateSvcFacade = (*mandateService)(nil)

// CreateMandate validates and persists a new mandate.
// The mandate starts active with LastExecutedAt initialized to StartsAt, so
// the first execution happens one full period after the start.
func (s *mandateService) CreateMandate(ctx context.Context, req dto.CreateMandateRequest, creatorUserID string) (*domain.Mandate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: mandate amount must not be negative", apperrors.ErrValidation)
	}
	if !req.Periodicity.IsValid() {
		return nil, fmt.Errorf("%w: unknown periodicity %q", apperrors.ErrValidation, req.Periodicity)
	}

	now := time.Now().UTC()
	startsAt := now
	if req.StartsAt != nil {
		startsAt = req.StartsAt.UTC()
	}

	publicID, err := utils.GenerateSecureRandomString(publicIDBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mandate public id: %w", err)
	}

	mandate := domain.Mandate{
		MandateID:      uuid.NewString(),
		PublicID:       publicID,
		CustomerID:     req.CustomerID,
		CreditorName:   req.CreditorName,
		PayerIBAN:      req.PayerIBAN,
		CreditorIBAN:   req.CreditorIBAN,
		Amount:         req.Amount,
		Periodicity:    req.Periodicity,
		IsActive:       true,
		StartsAt:       startsAt,
		LastExecutedAt: startsAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.mandateRepo.SaveMandate(ctx, mandate); err != nil {
		logger.Error("Failed to save mandate", slog.String("mandate_id", mandate.MandateID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Mandate created",
		slog.String("mandate_id", mandate.MandateID),
		slog.String("public_id", mandate.PublicID),
		slog.String("periodicity", string(mandate.Periodicity)))

	return &mandate, nil
}

// ListMandatesByCustomer returns all mandates debiting the given customer.
func (s *mandateService) ListMandatesByCustomer(ctx context.Context, customerID string) ([]domain.Mandate, error) {
	return s.mandateRepo.ListMandatesByCustomer(ctx, customerID)
}

// SetMandateActive flips the active flag. Deactivation is the only way to
// cancel a mandate; nothing is ever deleted.
func (s *mandateService) SetMandateActive(ctx context.Context, mandateID string, active bool, updaterUserID string) (*domain.Mandate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	mandate, err := s.mandateRepo.FindMandateByID(ctx, mandateID)
	if err != nil {
		return nil, err
	}

	if mandate.IsActive == active {
		return mandate, nil
	}

	now := time.Now().UTC()
	if err := s.mandateRepo.SetMandateActive(ctx, mandateID, active, updaterUserID, now); err != nil {
		logger.Error("Failed to update mandate active flag", slog.String("mandate_id", mandateID), slog.String("error", err.Error()))
		return nil, err
	}

	mandate.IsActive = active
	mandate.LastUpdatedAt = now
	mandate.LastUpdatedBy = updaterUserID

	logger.Info("Mandate active flag updated", slog.String("mandate_id", mandateID), slog.Bool("active", active))
	return mandate, nil
}
