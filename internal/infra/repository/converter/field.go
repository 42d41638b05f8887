package converter

import (
	"fmt"
	"time"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func FieldToCreateParams(f *field.Field) sqldb.CreateFieldParams {
	return sqldb.CreateFieldParams{
		ID:                f.ID(),
		OwnerID:           f.OwnerID(),
		Name:              f.Name(),
		Address:           f.Address(),
		DistrictID:        f.DistrictID(),
		Contact:           f.Contact(),
		HourlyRateCents:   f.HourlyRate().Cents(),
		Description:       f.Description(),
		OpeningTime:       pgconv.SinceMidnightToPgtype(f.Opening().SinceMidnight()),
		ClosingTime:       pgconv.SinceMidnightToPgtype(f.Closing().SinceMidnight()),
		MinBookingSeconds: unitSeconds(f.Unit()),
		Latitude:          f.Coordinates().Latitude(),
		Longitude:         f.Coordinates().Longitude(),
		CreatedAt:         pgconv.TimeToPgtype(f.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}

func FieldToUpdateParams(f *field.Field) sqldb.UpdateFieldParams {
	return sqldb.UpdateFieldParams{
		ID:                f.ID(),
		Name:              f.Name(),
		Address:           f.Address(),
		DistrictID:        f.DistrictID(),
		Contact:           f.Contact(),
		HourlyRateCents:   f.HourlyRate().Cents(),
		Description:       f.Description(),
		OpeningTime:       pgconv.SinceMidnightToPgtype(f.Opening().SinceMidnight()),
		ClosingTime:       pgconv.SinceMidnightToPgtype(f.Closing().SinceMidnight()),
		MinBookingSeconds: unitSeconds(f.Unit()),
		Latitude:          f.Coordinates().Latitude(),
		Longitude:         f.Coordinates().Longitude(),
		UpdatedAt:         pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}

// FieldFromRow rebuilds the domain field from a stored row.
func FieldFromRow(row sqldb.Field, images []string) (*field.Field, error) {
	opening, err := timeOfDayFromPgtype(row.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("opening_time: %w", err)
	}
	closing, err := timeOfDayFromPgtype(row.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("closing_time: %w", err)
	}
	unit, err := field.NewBookingUnit(time.Duration(row.MinBookingSeconds) * time.Second)
	if err != nil {
		return nil, fmt.Errorf("min_booking_seconds: %w", err)
	}
	rate, err := field.NewHourlyRate(row.HourlyRateCents)
	if err != nil {
		return nil, fmt.Errorf("hourly_rate_cents: %w", err)
	}
	coords, err := field.NewCoordinates(row.Latitude, row.Longitude)
	if err != nil {
		return nil, fmt.Errorf("coordinates: %w", err)
	}

	return field.Reconstruct(row.ID, field.Params{
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Address:     row.Address,
		DistrictID:  row.DistrictID,
		Contact:     row.Contact,
		HourlyRate:  rate,
		Description: row.Description,
		Opening:     opening,
		Closing:     closing,
		Unit:        unit,
		Coordinates: coords,
		Images:      images,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

func timeOfDayFromPgtype(pt pgtype.Time) (field.TimeOfDay, error) {
	d, err := pgconv.SinceMidnightFromPgtype(pt)
	if err != nil {
		return field.TimeOfDay{}, err
	}
	return field.TimeOfDayFromDuration(d)
}

func unitSeconds(u field.BookingUnit) int32 {
	return int32(u.Seconds()) // #nosec G115 -- bounded by field.MaxBookingUnit
}
