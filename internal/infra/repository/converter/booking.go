package converter

import (
	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqldb.CreateBookingParams {
	slot := b.Slot()
	return sqldb.CreateBookingParams{
		ID:        b.ID(),
		FieldID:   b.FieldID(),
		UserID:    b.UserID(),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func ExistingFromRows(rows []sqldb.Booking) []booking.Existing {
	out := make([]booking.Existing, len(rows))
	for i, row := range rows {
		out[i] = booking.Existing{
			ID:    row.ID,
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		}
	}
	return out
}
