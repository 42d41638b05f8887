package request

import (
	"football-field-booking/internal/usecase/commands"
	"football-field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateFieldRequest struct {
	Name               string    `json:"name" binding:"required,max=100"`
	Address            string    `json:"address" binding:"required,max=255"`
	District           uuid.UUID `json:"district" binding:"required"`
	Contact            string    `json:"contact" binding:"required,max=100"`
	HourlyRate         string    `json:"hourly_rate" binding:"required"`
	Description        string    `json:"description" binding:"max=2000"`
	OpeningTime        string    `json:"opening_time" binding:"required"`
	ClosingTime        string    `json:"closing_time" binding:"required"`
	MinBookingDuration *string   `json:"min_booking_duration,omitempty"`
	Latitude           *float64  `json:"latitude" binding:"required"`
	Longitude          *float64  `json:"longitude" binding:"required"`
	Images             []string  `json:"images" binding:"omitempty,max=10"`
}

func (r CreateFieldRequest) ToCommand() commands.CreateFieldRequest {
	var unit string
	if r.MinBookingDuration != nil {
		unit = *r.MinBookingDuration
	}
	var lat, lon float64
	if r.Latitude != nil {
		lat = *r.Latitude
	}
	if r.Longitude != nil {
		lon = *r.Longitude
	}
	return commands.CreateFieldRequest{
		Name:               r.Name,
		Address:            r.Address,
		DistrictID:         r.District,
		Contact:            r.Contact,
		HourlyRate:         r.HourlyRate,
		Description:        r.Description,
		OpeningTime:        r.OpeningTime,
		ClosingTime:        r.ClosingTime,
		MinBookingDuration: unit,
		Latitude:           lat,
		Longitude:          lon,
		Images:             r.Images,
	}
}

// UpdateFieldRequest is a PATCH body. Omitted members are left unchanged.
type UpdateFieldRequest struct {
	Name               *string    `json:"name" binding:"omitempty,max=100"`
	Address            *string    `json:"address" binding:"omitempty,max=255"`
	District           *uuid.UUID `json:"district"`
	Contact            *string    `json:"contact" binding:"omitempty,max=100"`
	HourlyRate         *string    `json:"hourly_rate"`
	Description        *string    `json:"description" binding:"omitempty,max=2000"`
	OpeningTime        *string    `json:"opening_time"`
	ClosingTime        *string    `json:"closing_time"`
	MinBookingDuration *string    `json:"min_booking_duration"`
	Latitude           *float64   `json:"latitude"`
	Longitude          *float64   `json:"longitude"`
	Images             *[]string  `json:"images" binding:"omitempty,max=10"`
}

func (r UpdateFieldRequest) ToCommand() commands.UpdateFieldRequest {
	return commands.UpdateFieldRequest{
		Name:               r.Name,
		Address:            r.Address,
		DistrictID:         r.District,
		Contact:            r.Contact,
		HourlyRate:         r.HourlyRate,
		Description:        r.Description,
		OpeningTime:        r.OpeningTime,
		ClosingTime:        r.ClosingTime,
		MinBookingDuration: r.MinBookingDuration,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		Images:             r.Images,
	}
}

// ReplaceFieldRequest is a PUT body. Required members are the same as on creation.
// Omitted optional members keep their stored value.
type ReplaceFieldRequest struct {
	Name               string    `json:"name" binding:"required,max=100"`
	Address            string    `json:"address" binding:"required,max=255"`
	District           uuid.UUID `json:"district" binding:"required"`
	Contact            string    `json:"contact" binding:"required,max=100"`
	HourlyRate         string    `json:"hourly_rate" binding:"required"`
	Description        *string   `json:"description" binding:"omitempty,max=2000"`
	OpeningTime        string    `json:"opening_time" binding:"required"`
	ClosingTime        string    `json:"closing_time" binding:"required"`
	MinBookingDuration *string   `json:"min_booking_duration"`
	Latitude           *float64  `json:"latitude" binding:"required"`
	Longitude          *float64  `json:"longitude" binding:"required"`
	Images             *[]string `json:"images" binding:"omitempty,max=10"`
}

func (r ReplaceFieldRequest) ToCommand() commands.UpdateFieldRequest {
	return commands.UpdateFieldRequest{
		Name:               &r.Name,
		Address:            &r.Address,
		DistrictID:         &r.District,
		Contact:            &r.Contact,
		HourlyRate:         &r.HourlyRate,
		Description:        r.Description,
		OpeningTime:        &r.OpeningTime,
		ClosingTime:        &r.ClosingTime,
		MinBookingDuration: r.MinBookingDuration,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		Images:             r.Images,
	}
}

// FieldListQuery holds the exact-match filters of GET /fields.
type FieldListQuery struct {
	Name    *string `form:"name"`
	Address *string `form:"address"`
}

func (q FieldListQuery) ToFilters() queries.FieldFilters {
	return queries.FieldFilters{Name: q.Name, Address: q.Address}
}

// AvailabilityQuery is bound as plain strings. Malformed values narrow or reorder the
// result instead of failing the request.
type AvailabilityQuery struct {
	DistrictID string `form:"district_id"`
	StartTime  string `form:"start_time"`
	EndTime    string `form:"end_time"`
	Latitude   string `form:"latitude"`
	Longitude  string `form:"longitude"`
}

func (q AvailabilityQuery) ToFilters() queries.AvailabilityFilters {
	return queries.AvailabilityFilters{
		DistrictID: q.DistrictID,
		StartTime:  q.StartTime,
		EndTime:    q.EndTime,
		Latitude:   q.Latitude,
		Longitude:  q.Longitude,
	}
}
