package repository

import (
	"context"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/repository/converter"
	"football-field-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqldb.DBTX, arg sqldb.CreateBookingParams) (sqldb.Booking, error)
	DeleteBooking(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqldb.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqldb.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports the unique and exclusion constraints as KindDuplicateKey and
// KindExclusionViolated.
func (r *BookingRepository) Create(ctx context.Context, tx sqldb.DBTX, b *booking.Booking) (uuid.UUID, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqldb.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
