package unitofwork

import "context"

// RepositoryFactory is what services depend on. Tests substitute an in-memory one.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
