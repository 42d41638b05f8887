package response

import (
	"log/slog"
	"time"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DistrictResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	City   string    `json:"city"`
	Region string    `json:"region"`
}

type FieldResponse struct {
	ID                 uuid.UUID        `json:"id"`
	OwnerID            uuid.UUID        `json:"owner"`
	Name               string           `json:"name"`
	Address            string           `json:"address"`
	District           DistrictResponse `json:"district"`
	Contact            string           `json:"contact"`
	HourlyRate         string           `json:"hourly_rate"`
	Description        string           `json:"description"`
	OpeningTime        string           `json:"opening_time"`
	ClosingTime        string           `json:"closing_time"`
	MinBookingDuration string           `json:"min_booking_duration"`
	Latitude           float64          `json:"latitude"`
	Longitude          float64          `json:"longitude"`
	Images             []string         `json:"images"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// value objects render through their String methods: "60.00", "08:00:00", "01:00:00"
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: field.HourlyRate{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(field.HourlyRate).String(), nil },
		},
		{
			SrcType: field.TimeOfDay{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(field.TimeOfDay).String(), nil },
		},
		{
			SrcType: field.BookingUnit{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(field.BookingUnit).String(), nil },
		},
	},
}

func FromFieldView(v *queries.FieldView) *FieldResponse {
	res := &FieldResponse{}
	if err := copier.CopyWithOption(res, v, viewCopyOption); err != nil {
		// only reachable if the converters above stop matching the view types
		slog.Error("failed to map field view", "field_id", v.ID, "error", err)
	}
	res.Latitude = v.Coordinates.Latitude()
	res.Longitude = v.Coordinates.Longitude()
	if res.Images == nil {
		res.Images = []string{}
	}
	return res
}

func FromFieldViews(views []*queries.FieldView) []*FieldResponse {
	res := make([]*FieldResponse, len(views))
	for i, v := range views {
		res[i] = FromFieldView(v)
	}
	return res
}

func FromDistrictViews(views []*queries.DistrictView) []*DistrictResponse {
	res := make([]*DistrictResponse, len(views))
	for i, v := range views {
		res[i] = &DistrictResponse{}
		if err := copier.Copy(res[i], v); err != nil {
			slog.Error("failed to map district view", "district_id", v.ID, "error", err)
		}
	}
	return res
}
