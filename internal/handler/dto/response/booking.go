package response

import (
	"time"

	"football-field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	FieldID   uuid.UUID `json:"field"`
	FieldName string    `json:"field_name"`
	UserID    uuid.UUID `json:"user"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// FromBookingView renders the slot in loc, the zone bookings are anchored in.
func FromBookingView(v *queries.BookingView, loc *time.Location) *BookingResponse {
	return &BookingResponse{
		ID:        v.ID,
		FieldID:   v.FieldID,
		FieldName: v.FieldName,
		UserID:    v.UserID,
		StartTime: v.StartTime.In(loc),
		EndTime:   v.EndTime.In(loc),
		CreatedAt: v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView, loc *time.Location) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v, loc)
	}
	return res
}
