package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and is
// used by the HTTP handlers and the scheduler wiring in main.
type ServiceContainer struct {
	Mandate   MandateSvcFacade
	Movement  MovementSvcFacade
	Execution ExecutionSvcFacade
}
