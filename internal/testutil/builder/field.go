//go:build unit || integration

package builder

import (
	"testing"
	"time"

	"football-field-booking/internal/domain/field"
	reqdto "football-field-booking/internal/handler/dto/request"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/pgconv"
	"football-field-booking/internal/usecase/commands"
	"football-field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// District ids seeded by the migrations.
var (
	ChilonzorDistrictID = uuid.MustParse("6f1c1c0e-0000-4000-8000-000000001001")
	YunusobodDistrictID = uuid.MustParse("6f1c1c0e-0000-4000-8000-000000001002")
)

type FieldBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Address     string
	DistrictID  uuid.UUID
	Contact     string
	HourlyRate  string
	Description string
	Opening     string
	Closing     string
	Unit        string
	Latitude    float64
	Longitude   float64
	Images      []string
	CreatedAt   time.Time
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Bunyodkor Arena",
		Address:     "Bunyodkor ko'chasi 1",
		DistrictID:  ChilonzorDistrictID,
		Contact:     "+998901234567",
		HourlyRate:  "60.00",
		Description: "Artificial turf, 5x5",
		Opening:     "08:00",
		Closing:     "22:00",
		Unit:        "01:00:00",
		Latitude:    41.2995,
		Longitude:   69.2401,
		Images:      []string{"https://cdn.example.com/fields/bunyodkor.jpg"},
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (b *FieldBuilder) With(mutate func(*FieldBuilder)) *FieldBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

// Build methods

func (b *FieldBuilder) params() (field.Params, error) {
	opening, err := field.ParseTimeOfDay(b.Opening)
	if err != nil {
		return field.Params{}, err
	}
	closing, err := field.ParseTimeOfDay(b.Closing)
	if err != nil {
		return field.Params{}, err
	}
	unit, err := field.ParseBookingUnit(b.Unit)
	if err != nil {
		return field.Params{}, err
	}
	rate, err := field.ParseHourlyRate(b.HourlyRate)
	if err != nil {
		return field.Params{}, err
	}
	coords, err := field.NewCoordinates(b.Latitude, b.Longitude)
	if err != nil {
		return field.Params{}, err
	}
	return field.Params{
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Address:     b.Address,
		DistrictID:  b.DistrictID,
		Contact:     b.Contact,
		HourlyRate:  rate,
		Description: b.Description,
		Opening:     opening,
		Closing:     closing,
		Unit:        unit,
		Coordinates: coords,
		Images:      b.Images,
	}, nil
}

func (b *FieldBuilder) BuildParams(t *testing.T) field.Params {
	t.Helper()
	p, err := b.params()
	require.NoError(t, err)
	return p
}

// BuildDomain runs the same validation as a real create.
func (b *FieldBuilder) BuildDomain() (*field.Field, error) {
	p, err := b.params()
	if err != nil {
		return nil, err
	}
	return field.NewField(p, b.CreatedAt)
}

// BuildStored returns a field as it would come back from the database, keeping b.ID.
func (b *FieldBuilder) BuildStored(t *testing.T) *field.Field {
	t.Helper()
	return field.Reconstruct(b.ID, b.BuildParams(t), b.CreatedAt, b.CreatedAt)
}

func (b *FieldBuilder) BuildRow(t *testing.T) sqldb.Field {
	t.Helper()
	p := b.BuildParams(t)
	return sqldb.Field{
		ID:                b.ID,
		OwnerID:           b.OwnerID,
		Name:              b.Name,
		Address:           b.Address,
		DistrictID:        b.DistrictID,
		Contact:           b.Contact,
		HourlyRateCents:   p.HourlyRate.Cents(),
		Description:       b.Description,
		OpeningTime:       pgconv.SinceMidnightToPgtype(p.Opening.SinceMidnight()),
		ClosingTime:       pgconv.SinceMidnightToPgtype(p.Closing.SinceMidnight()),
		MinBookingSeconds: int32(p.Unit.Seconds()),
		Latitude:          b.Latitude,
		Longitude:         b.Longitude,
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *FieldBuilder) BuildViewRow(t *testing.T) sqldb.FieldView {
	t.Helper()
	return sqldb.FieldView{
		Field:        b.BuildRow(t),
		DistrictName: "Chilonzor",
		CityName:     "Tashkent",
		RegionName:   "Tashkent",
	}
}

func (b *FieldBuilder) BuildView(t *testing.T) *queries.FieldView {
	t.Helper()
	p := b.BuildParams(t)
	return &queries.FieldView{
		ID:      b.ID,
		OwnerID: b.OwnerID,
		Name:    b.Name,
		Address: b.Address,
		District: queries.DistrictView{
			ID:     b.DistrictID,
			Name:   "Chilonzor",
			City:   "Tashkent",
			Region: "Tashkent",
		},
		Contact:            b.Contact,
		HourlyRate:         p.HourlyRate,
		Description:        b.Description,
		OpeningTime:        p.Opening,
		ClosingTime:        p.Closing,
		MinBookingDuration: p.Unit,
		Coordinates:        p.Coordinates,
		Images:             b.Images,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
	}
}

func (b *FieldBuilder) BuildCreateCommand() commands.CreateFieldRequest {
	return commands.CreateFieldRequest{
		Name:               b.Name,
		Address:            b.Address,
		DistrictID:         b.DistrictID,
		Contact:            b.Contact,
		HourlyRate:         b.HourlyRate,
		Description:        b.Description,
		OpeningTime:        b.Opening,
		ClosingTime:        b.Closing,
		MinBookingDuration: b.Unit,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		Images:             b.Images,
	}
}

func (b *FieldBuilder) BuildCreateRequestDTO() reqdto.CreateFieldRequest {
	lat, lon := b.Latitude, b.Longitude
	unit := b.Unit
	return reqdto.CreateFieldRequest{
		Name:               b.Name,
		Address:            b.Address,
		District:           b.DistrictID,
		Contact:            b.Contact,
		HourlyRate:         b.HourlyRate,
		Description:        b.Description,
		OpeningTime:        b.Opening,
		ClosingTime:        b.Closing,
		MinBookingDuration: &unit,
		Latitude:           &lat,
		Longitude:          &lon,
		Images:             b.Images,
	}
}
