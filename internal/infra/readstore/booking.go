package readstore

import (
	"context"

	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/pgconv"
	"football-field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.BookingView, error)
	ListBookingViews(ctx context.Context, db sqldb.DBTX, arg sqldb.ListBookingViewsParams) ([]sqldb.BookingView, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqldb.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqldb.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) List(ctx context.Context, criteria queries.BookingListCriteria) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.db, sqldb.ListBookingViewsParams{
		UserID:       pgconv.UUIDPtrToPgtype(criteria.UserID),
		FieldOwnerID: pgconv.UUIDPtrToPgtype(criteria.FieldOwnerID),
		FieldName:    pgconv.StringPtrToPgtype(criteria.FieldName),
		StartTime:    pgconv.TimePtrToPgtype(criteria.StartTime),
		EndTime:      pgconv.TimePtrToPgtype(criteria.EndTime),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking views", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result, nil
}

func toBookingView(row sqldb.BookingView) *queries.BookingView {
	return &queries.BookingView{
		ID:           row.ID,
		FieldID:      row.FieldID,
		FieldName:    row.FieldName,
		FieldOwnerID: row.FieldOwnerID,
		UserID:       row.UserID,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
