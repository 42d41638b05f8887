package queries

import "context"

type DistrictReadStore interface {
	List(ctx context.Context) ([]*DistrictView, error)
}

type DistrictQueries interface {
	List(ctx context.Context) ([]*DistrictView, error)
}

type districtQueriesImpl struct {
	store DistrictReadStore
}

func NewDistrictQueries(store DistrictReadStore) DistrictQueries {
	return &districtQueriesImpl{store: store}
}

func (q *districtQueriesImpl) List(ctx context.Context) ([]*DistrictView, error) {
	return q.store.List(ctx)
}
