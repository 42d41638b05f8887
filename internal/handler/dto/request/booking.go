package request

import (
	"time"

	"football-field-booking/internal/pkg/isotime"
	"football-field-booking/internal/usecase/commands"
	"football-field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Field     uuid.UUID `json:"field" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
}

// ToCommand reads timestamps without an offset in loc.
func (r CreateBookingRequest) ToCommand(loc *time.Location) (commands.CreateBookingRequest, error) {
	start, err := isotime.Parse(r.StartTime, loc)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	end, err := isotime.Parse(r.EndTime, loc)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{FieldID: r.Field, Start: start, End: end}, nil
}

// BookingListQuery holds the exact-match filters of GET /bookings.
type BookingListQuery struct {
	FieldName *string `form:"field__name"`
	StartTime *string `form:"start_time"`
	EndTime   *string `form:"end_time"`
}

// ToFilters reads timestamps without an offset in loc.
func (q BookingListQuery) ToFilters(loc *time.Location) (queries.BookingFilters, error) {
	f := queries.BookingFilters{FieldName: q.FieldName}
	if q.StartTime != nil {
		t, err := isotime.Parse(*q.StartTime, loc)
		if err != nil {
			return f, err
		}
		f.StartTime = &t
	}
	if q.EndTime != nil {
		t, err := isotime.Parse(*q.EndTime, loc)
		if err != nil {
			return f, err
		}
		f.EndTime = &t
	}
	return f, nil
}
