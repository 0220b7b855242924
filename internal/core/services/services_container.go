package services

import (
	portsrepo "github.com/finovabank/direct_debit_engine/internal/core/ports/repositories"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil when event publishing is disabled.
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher MovementPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Mandate:   NewMandateService(repos.MandateRepo),
		Movement:  NewMovementService(repos.MovementRepo),
		Execution: NewExecutionService(repos.AccountRepo, repos.MovementRepo, repos.MandateRepo, publisher),
	}
}
