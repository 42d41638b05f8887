package sqldb

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Field struct {
	ID                uuid.UUID          `json:"id"`
	OwnerID           uuid.UUID          `json:"owner_id"`
	Name              string             `json:"name"`
	Address           string             `json:"address"`
	DistrictID        uuid.UUID          `json:"district_id"`
	Contact           string             `json:"contact"`
	HourlyRateCents   int64              `json:"hourly_rate_cents"`
	Description       string             `json:"description"`
	OpeningTime       pgtype.Time        `json:"opening_time"`
	ClosingTime       pgtype.Time        `json:"closing_time"`
	MinBookingSeconds int32              `json:"min_booking_seconds"`
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

type FieldImage struct {
	ID       uuid.UUID `json:"id"`
	FieldID  uuid.UUID `json:"field_id"`
	Url      string    `json:"url"`
	Position int32     `json:"position"`
}

type Booking struct {
	ID        uuid.UUID          `json:"id"`
	FieldID   uuid.UUID          `json:"field_id"`
	UserID    uuid.UUID          `json:"user_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

// FieldView is a field joined with its district, city and region names.
type FieldView struct {
	Field
	DistrictName string `json:"district_name"`
	CityName     string `json:"city_name"`
	RegionName   string `json:"region_name"`
}

type BookingView struct {
	Booking
	FieldName    string    `json:"field_name"`
	FieldOwnerID uuid.UUID `json:"field_owner_id"`
}
