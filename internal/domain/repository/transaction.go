package repository

import "context"

// TransactionManager runs a unit of work atomically without exposing the driver.
type TransactionManager interface {
	// Execute rolls back when fn fails and commits otherwise. Repositories
	// taken from the factory all write through the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory builds repositories bound to one open transaction.
type RepositoryFactory interface {
	NewParentRepository() ParentRepository
	NewTeenRepository() TeenRepository
	NewGeofenceRepository() GeofenceRepository
}
