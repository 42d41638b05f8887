package shared

import (
	"time"

	"football-field-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID           uuid.UUID
	FieldID      uuid.UUID
	UserID       uuid.UUID
	FieldOwnerID uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
}

// RelationsOf reports how actorID is tied to the booking.
func (b *BookingSnapshot) RelationsOf(actorID uuid.UUID) user.Relations {
	return user.Relations{
		user.RelationBooker:     b.UserID == actorID,
		user.RelationFieldOwner: b.FieldOwnerID == actorID,
	}
}
