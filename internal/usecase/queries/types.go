package queries

import (
	"time"

	"football-field-booking/internal/domain/field"

	"github.com/google/uuid"
)

type DistrictView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	City   string    `json:"city"`
	Region string    `json:"region"`
}

// FieldView represents read-optimized field data joined with its district
type FieldView struct {
	ID                 uuid.UUID         `json:"id"`
	OwnerID            uuid.UUID         `json:"owner_id"`
	Name               string            `json:"name"`
	Address            string            `json:"address"`
	District           DistrictView      `json:"district"`
	Contact            string            `json:"contact"`
	HourlyRate         field.HourlyRate  `json:"-"`
	Description        string            `json:"description"`
	OpeningTime        field.TimeOfDay   `json:"-"`
	ClosingTime        field.TimeOfDay   `json:"-"`
	MinBookingDuration field.BookingUnit `json:"-"`
	Coordinates        field.Coordinates `json:"-"`
	Images             []string          `json:"images"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	FieldID      uuid.UUID `json:"field_id"`
	FieldName    string    `json:"field_name"`
	FieldOwnerID uuid.UUID `json:"field_owner_id"`
	UserID       uuid.UUID `json:"user_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	CreatedAt    time.Time `json:"created_at"`
}

// Read store criteria. Nil members do not filter.

type FieldListCriteria struct {
	OwnerID *uuid.UUID
	Name    *string
	Address *string
}

type AvailabilityCriteria struct {
	DistrictID *uuid.UUID
	Window     *field.Window
}

type BookingListCriteria struct {
	UserID       *uuid.UUID
	FieldOwnerID *uuid.UUID
	FieldName    *string
	StartTime    *time.Time
	EndTime      *time.Time
}
