//go:build unit || integration

package builder

import (
	"time"

	"football-field-booking/internal/domain/booking"
	reqdto "football-field-booking/internal/handler/dto/request"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/pgconv"
	"football-field-booking/internal/usecase/queries"
	"football-field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Tashkent is the zone bookings are anchored in by default.
var Tashkent = time.FixedZone("Asia/Tashkent", 5*60*60)

type BookingBuilder struct {
	ID           uuid.UUID
	FieldID      uuid.UUID
	FieldName    string
	FieldOwnerID uuid.UUID
	UserID       uuid.UUID
	Start        time.Time
	End          time.Time
	CreatedAt    time.Time
}

// NewBookingBuilder defaults to 09:00-11:00 one week ahead, which fits an 08:00-22:00 field.
func NewBookingBuilder() *BookingBuilder {
	day := time.Now().In(Tashkent).AddDate(0, 0, 7)
	start := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, Tashkent)
	return &BookingBuilder{
		ID:           uuid.New(),
		FieldID:      uuid.New(),
		FieldName:    "Bunyodkor Arena",
		FieldOwnerID: uuid.New(),
		UserID:       uuid.New(),
		Start:        start,
		End:          start.Add(2 * time.Hour),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

// At moves the slot to the given hours on the builder's day.
func (b *BookingBuilder) At(startHour, endHour int) *BookingBuilder {
	y, m, d := b.Start.Date()
	b.Start = time.Date(y, m, d, startHour, 0, 0, 0, b.Start.Location())
	b.End = time.Date(y, m, d, endHour, 0, 0, 0, b.Start.Location())
	return b
}

// Build methods

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.NewBooking(b.FieldID, b.UserID, booking.NewTimeSlot(b.Start, b.End), b.CreatedAt)
}

func (b *BookingBuilder) BuildExisting() booking.Existing {
	return booking.Existing{ID: b.ID, Start: b.Start, End: b.End}
}

func (b *BookingBuilder) BuildRow() sqldb.Booking {
	return sqldb.Booking{
		ID:        b.ID,
		FieldID:   b.FieldID,
		UserID:    b.UserID,
		StartTime: pgconv.TimeToPgtype(b.Start),
		EndTime:   pgconv.TimeToPgtype(b.End),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildViewRow() sqldb.BookingView {
	return sqldb.BookingView{
		Booking:      b.BuildRow(),
		FieldName:    b.FieldName,
		FieldOwnerID: b.FieldOwnerID,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:           b.ID,
		FieldID:      b.FieldID,
		UserID:       b.UserID,
		FieldOwnerID: b.FieldOwnerID,
		StartTime:    b.Start,
		EndTime:      b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		FieldID:      b.FieldID,
		FieldName:    b.FieldName,
		FieldOwnerID: b.FieldOwnerID,
		UserID:       b.UserID,
		StartTime:    b.Start,
		EndTime:      b.End,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Field:     b.FieldID,
		StartTime: b.Start.Format(time.RFC3339),
		EndTime:   b.End.Format(time.RFC3339),
	}
}
