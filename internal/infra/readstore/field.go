package readstore

import (
	"context"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/repository/converter"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/pgconv"
	"football-field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type FieldReadQueries interface {
	GetFieldViewByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.FieldView, error)
	ListFieldViews(ctx context.Context, db sqldb.DBTX, arg sqldb.ListFieldViewsParams) ([]sqldb.FieldView, error)
	ListAvailableFieldViews(ctx context.Context, db sqldb.DBTX, arg sqldb.ListAvailableFieldViewsParams) ([]sqldb.FieldView, error)
	ListFieldImagesByFieldIDs(ctx context.Context, db sqldb.DBTX, fieldIDs []uuid.UUID) ([]sqldb.FieldImage, error)
}

// Snapshotter runs fn in one read-only transaction, so a field row and its images are
// read from the same snapshot.
type Snapshotter interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqldb.DBTX) error) error
}

type FieldReadStore struct {
	queries FieldReadQueries
	tx      Snapshotter
}

func NewFieldReadStore(queries FieldReadQueries, tx Snapshotter) *FieldReadStore {
	return &FieldReadStore{
		queries: queries,
		tx:      tx,
	}
}

func (r *FieldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FieldView, error) {
	var result *queries.FieldView
	err := r.tx.WithinReadOnly(ctx, func(ctx context.Context, db sqldb.DBTX) error {
		row, err := r.queries.GetFieldViewByID(ctx, db, id)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("field not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to get field view by id", err)
		}

		views, err := r.withImages(ctx, db, []sqldb.FieldView{row})
		if err != nil {
			return err
		}
		result = views[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *FieldReadStore) List(ctx context.Context, criteria queries.FieldListCriteria) ([]*queries.FieldView, error) {
	var result []*queries.FieldView
	err := r.tx.WithinReadOnly(ctx, func(ctx context.Context, db sqldb.DBTX) error {
		rows, err := r.queries.ListFieldViews(ctx, db, sqldb.ListFieldViewsParams{
			OwnerID: pgconv.UUIDPtrToPgtype(criteria.OwnerID),
			Name:    pgconv.StringPtrToPgtype(criteria.Name),
			Address: pgconv.StringPtrToPgtype(criteria.Address),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to list field views", err)
		}
		result, err = r.withImages(ctx, db, rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindAvailable applies the district and time-window filters in SQL. Ordering by
// distance is left to the caller.
func (r *FieldReadStore) FindAvailable(ctx context.Context, criteria queries.AvailabilityCriteria) ([]*queries.FieldView, error) {
	var result []*queries.FieldView
	err := r.tx.WithinReadOnly(ctx, func(ctx context.Context, db sqldb.DBTX) error {
		rows, err := r.queries.ListAvailableFieldViews(ctx, db, availabilityParams(criteria))
		if err != nil {
			return infra.WrapRepoErr("failed to list available field views", err)
		}
		result, err = r.withImages(ctx, db, rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func availabilityParams(c queries.AvailabilityCriteria) sqldb.ListAvailableFieldViewsParams {
	params := sqldb.ListAvailableFieldViewsParams{
		DistrictID: pgconv.UUIDPtrToPgtype(c.DistrictID),
	}
	if c.Window == nil {
		return params
	}
	// clock times are taken in each timestamp's own offset, not the session time zone
	params.WindowStart = pgconv.TimeToPgtype(c.Window.Start)
	params.WindowEnd = pgconv.TimeToPgtype(c.Window.End)
	params.StartClock = pgconv.SinceMidnightToPgtype(field.ClockOf(c.Window.Start).SinceMidnight())
	params.EndClock = pgconv.SinceMidnightToPgtype(field.ClockOf(c.Window.End).SinceMidnight())
	return params
}

func (r *FieldReadStore) withImages(ctx context.Context, db sqldb.DBTX, rows []sqldb.FieldView) ([]*queries.FieldView, error) {
	result := make([]*queries.FieldView, 0, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	images, err := r.queries.ListFieldImagesByFieldIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list field images", err)
	}
	byField := make(map[uuid.UUID][]string, len(rows))
	for _, img := range images {
		byField[img.FieldID] = append(byField[img.FieldID], img.Url)
	}

	for _, row := range rows {
		v, err := toFieldView(row, byField[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("stored field is invalid", err, infra.KindDBFailure)
		}
		result = append(result, v)
	}
	return result, nil
}

func toFieldView(row sqldb.FieldView, images []string) (*queries.FieldView, error) {
	f, err := converter.FieldFromRow(row.Field, images)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}
	return &queries.FieldView{
		ID:      f.ID(),
		OwnerID: f.OwnerID(),
		Name:    f.Name(),
		Address: f.Address(),
		District: queries.DistrictView{
			ID:     row.DistrictID,
			Name:   row.DistrictName,
			City:   row.CityName,
			Region: row.RegionName,
		},
		Contact:            f.Contact(),
		HourlyRate:         f.HourlyRate(),
		Description:        f.Description(),
		OpeningTime:        f.Opening(),
		ClosingTime:        f.Closing(),
		MinBookingDuration: f.Unit(),
		Coordinates:        f.Coordinates(),
		Images:             images,
		CreatedAt:          f.CreatedAt(),
		UpdatedAt:          f.UpdatedAt(),
	}, nil
}
