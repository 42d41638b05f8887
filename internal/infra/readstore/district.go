package readstore

import (
	"context"

	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/usecase/queries"
)

type DistrictReadQueries interface {
	ListDistrictViews(ctx context.Context, db sqldb.DBTX) ([]sqldb.DistrictView, error)
}

type DistrictReadStore struct {
	queries DistrictReadQueries
	db      sqldb.DBTX
}

func NewDistrictReadStore(queries DistrictReadQueries, db sqldb.DBTX) *DistrictReadStore {
	return &DistrictReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DistrictReadStore) List(ctx context.Context) ([]*queries.DistrictView, error) {
	rows, err := r.queries.ListDistrictViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list districts", err)
	}
	result := make([]*queries.DistrictView, len(rows))
	for i, row := range rows {
		result[i] = &queries.DistrictView{
			ID:     row.ID,
			Name:   row.Name,
			City:   row.CityName,
			Region: row.RegionName,
		}
	}
	return result, nil
}
