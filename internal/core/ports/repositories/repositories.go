package repositories

// RepositoryProvider groups the concrete repositories handed to the service
// layer at wiring time.
type RepositoryProvider struct {
	MandateRepo  MandateRepository
	AccountRepo  AccountRepository
	MovementRepo MovementRepository
}
