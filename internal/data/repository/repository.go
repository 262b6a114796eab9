package repository

import (
	"context"

	"request-portal/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Role        RoleRepository
	User        UserRepository
	Profile     ProfileRepository
	Request     RequestRepository
	ActivityLog ActivityLogRepository
	Tx          Transactor
}

// Transactor runs fn against a Repository whose stores share one
// transaction. Returning an error from fn rolls everything back.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(repo *Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newStores(db, log)
	repo.Tx = &txRunner{db: db, log: log}
	return repo
}

func newStores(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Role:        NewRoleRepository(q, log),
		User:        NewUserRepository(q, log),
		Profile:     NewProfileRepository(q, log),
		Request:     NewRequestRepository(q, log),
		ActivityLog: NewActivityLogRepository(q, log),
	}
}

type txRunner struct {
	db  database.PgxIface
	log *zap.Logger
}

func (t *txRunner) RunInTx(ctx context.Context, fn func(repo *Repository) error) error {
	return database.WithTx(ctx, t.db, func(q database.Querier) error {
		repo := newStores(q, t.log)
		repo.Tx = t
		return fn(repo)
	})
}

// scanner is satisfied by pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}
