// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"guardian/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a repository.TransactionManager backed by db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or panic.
// fn's own error is returned untouched so callers can still match it.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepos{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "postgres transaction")
}

// txRepos hands out repositories that share one transaction.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) NewParentRepository() repository.ParentRepository {
	return NewParentRepository(r.tx)
}

func (r txRepos) NewTeenRepository() repository.TeenRepository {
	return NewTeenRepository(r.tx)
}

func (r txRepos) NewGeofenceRepository() repository.GeofenceRepository {
	return NewGeofenceRepository(r.tx)
}
