package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/core/services"
	"github.com/finovabank/direct_debit_engine/internal/middleware"
	"github.com/finovabank/direct_debit_engine/internal/platform/config"
)

// Scheduler is the long-lived background process that wakes on a fixed
// interval, pulls the active mandates, filters them by due-ness and drives
// the execution engine over each due mandate.
//
// Mandates within one tick are processed sequentially; ticks never overlap
// (SkipIfStillRunning), so two mandates sharing a payer account can never
// race on the balance.
type Scheduler struct {
	cron     *cron.Cron
	mandates portsrepo.MandateReader
	executor portssvc.ExecutionSvcFacade
	logger   *slog.Logger

	tickInterval     time.Duration
	executionTimeout time.Duration

	// Optional backoff window after an insufficient-funds failure. Zero means
	// the mandate is reconsidered on the very next tick, matching the default
	// keep-trying-until-funds-arrive behavior.
	insufficientFundsBackoff time.Duration
	retryAt                  map[string]time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler. It does not start ticking until Start is called.
func New(mandates portsrepo.MandateReader, executor portssvc.ExecutionSvcFacade, logger *slog.Logger, cfg *config.Config) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	))

	return &Scheduler{
		cron:                     c,
		mandates:                 mandates,
		executor:                 executor,
		logger:                   logger,
		tickInterval:             cfg.TickInterval,
		executionTimeout:         cfg.ExecutionTimeout,
		insufficientFundsBackoff: cfg.InsufficientFundsBackoff,
		retryAt:                  make(map[string]time.Time),
	}
}

// Start registers the tick job and starts the cron scheduler.
func (s *Scheduler) Start() error {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	spec := fmt.Sprintf("@every %s", s.tickInterval)
	if _, err := s.cron.AddFunc(spec, func() { s.RunTick(s.ctx) }); err != nil {
		return fmt.Errorf("failed to schedule mandate execution job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", slog.Duration("tick_interval", s.tickInterval))
	return nil
}

// Stop cancels the in-flight tick, if any, and waits for it to finish.
// Cancellation is observed between mandates, so shutdown blocks for at most
// one mandate execution.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunTick performs one scheduling cycle. All mandates in the tick are judged
// against the same instant, captured once at tick start. A tick-level failure
// (the active-mandate list itself unavailable) is logged and deferred to the
// next interval; a per-mandate failure never aborts the tick.
func (s *Scheduler) RunTick(ctx context.Context) {
	now := time.Now().UTC()
	logger := s.logger.With(slog.Time("tick_at", now))
	ctx = middleware.ContextWithLogger(ctx, logger)

	listCtx, cancel := context.WithTimeout(ctx, s.executionTimeout)
	mandates, err := s.mandates.ListActiveMandates(listCtx)
	cancel()
	if err != nil {
		logger.Error("failed to list active mandates, deferring to next tick", slog.String("error", err.Error()))
		return
	}

	executed, failed := 0, 0
	for i := range mandates {
		if ctx.Err() != nil {
			logger.Info("tick interrupted by shutdown", slog.Int("executed", executed), slog.Int("failed", failed))
			return
		}

		mandate := mandates[i]
		if !services.IsDue(mandate.Periodicity, mandate.LastExecutedAt, now) {
			continue
		}
		if s.inBackoff(mandate.MandateID, now) {
			continue
		}

		if s.executeOne(ctx, mandate, now) {
			executed++
		} else {
			failed++
		}
	}

	if executed > 0 || failed > 0 {
		logger.Info("tick finished", slog.Int("executed", executed), slog.Int("failed", failed))
	}
}

// executeOne drives the execution engine for a single due mandate and
// classifies the outcome. Returns true on success.
func (s *Scheduler) executeOne(ctx context.Context, mandate domain.Mandate, now time.Time) bool {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("mandate_id", mandate.MandateID),
		slog.String("mandate_public_id", mandate.PublicID),
	)

	execCtx, cancel := context.WithTimeout(middleware.ContextWithLogger(ctx, logger), s.executionTimeout)
	defer cancel()

	_, err := s.executor.ExecuteMandate(execCtx, mandate, now)
	if err == nil {
		delete(s.retryAt, mandate.MandateID)
		return true
	}

	var insufficient *apperrors.InsufficientFundsError
	var notFound *apperrors.AccountNotFoundError
	switch {
	case errors.As(err, &insufficient):
		// Expected outcome, not a defect. The mandate is reconsidered on the
		// next cycle (or after the configured backoff window).
		logger.Warn("mandate skipped: insufficient funds",
			slog.String("iban", insufficient.IBAN),
			slog.String("balance", insufficient.Balance.String()),
			slog.String("required", insufficient.Required.String()))
		if s.insufficientFundsBackoff > 0 {
			s.retryAt[mandate.MandateID] = now.Add(s.insufficientFundsBackoff)
		}
	case errors.As(err, &notFound):
		logger.Error("mandate skipped: payer account not found", slog.String("iban", notFound.IBAN))
	default:
		logger.Error("mandate execution failed", slog.String("error", err.Error()))
	}
	return false
}

func (s *Scheduler) inBackoff(mandateID string, now time.Time) bool {
	if s.insufficientFundsBackoff <= 0 {
		return false
	}
	at, ok := s.retryAt[mandateID]
	return ok && now.Before(at)
}
