package booking

import (
	"time"

	"github.com/google/uuid"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot does not validate. Ordering and policy checks belong to Validator so that
// failures are reported in a fixed order.
func NewTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses half-open [start, end) semantics, so back-to-back slots do not overlap.
func (ts TimeSlot) Overlaps(start, end time.Time) bool {
	return start.Before(ts.end) && end.After(ts.start)
}

type Booking struct {
	id        uuid.UUID
	fieldID   uuid.UUID
	userID    uuid.UUID
	slot      TimeSlot
	createdAt time.Time
}

// NewBooking builds a booking that already passed Validator.
func NewBooking(fieldID, userID uuid.UUID, slot TimeSlot, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		fieldID:   fieldID,
		userID:    userID,
		slot:      slot,
		createdAt: now,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) FieldID() uuid.UUID   { return b.fieldID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// Existing is a booking already stored for the field being validated against.
type Existing struct {
	ID    uuid.UUID
	Start time.Time
	End   time.Time
}
