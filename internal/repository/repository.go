package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a row is absent or not owned by the acting
// user. The two cases are deliberately indistinguishable so existence is
// not leaked to unauthorized callers.
var ErrNotFound = errors.New("not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*UsersR
	*CollectionsR
	*CardsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		UsersR:       NewUsersRepository(db),
		CollectionsR: NewCollectionsRepository(db),
		CardsR:       NewCardsRepository(db),
	}
}
