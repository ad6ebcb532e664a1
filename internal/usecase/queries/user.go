package queries

import (
	"context"
)

type UserQueries interface {
	List(ctx context.Context) ([]UserView, error)
}

type UserReadStore interface {
	List(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserView, error) {
	return q.readStore.List(ctx)
}
