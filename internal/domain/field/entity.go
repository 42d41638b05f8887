package field

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFieldName    = errors.New("field name cannot be empty")
	ErrFieldNameTooLong  = errors.New("field name is too long (max 100 characters)")
	ErrEmptyAddress      = errors.New("address cannot be empty")
	ErrAddressTooLong    = errors.New("address is too long (max 255 characters)")
	ErrEmptyContact      = errors.New("contact cannot be empty")
	ErrContactTooLong    = errors.New("contact is too long (max 100 characters)")
	ErrDistrictRequired  = errors.New("district is required")
	ErrOwnerRequired     = errors.New("owner is required")
	ErrInvalidImageURL   = errors.New("image must be an absolute http(s) url")
	ErrTooManyImages     = errors.New("too many images (max 10)")
	ErrDescriptionTooBig = errors.New("description is too long (max 2000 characters)")
)

const (
	MaxNameLength        = 100
	MaxAddressLength     = 255
	MaxContactLength     = 100
	MaxDescriptionLength = 2000
	MaxImages            = 10
)

// BookingRules is the part of a field the booking validator depends on.
type BookingRules struct {
	Opening TimeOfDay
	Closing TimeOfDay
	Unit    BookingUnit
}

type Field struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	address     string
	districtID  uuid.UUID
	contact     string
	hourlyRate  HourlyRate
	description string
	opening     TimeOfDay
	closing     TimeOfDay
	unit        BookingUnit
	coordinates Coordinates
	images      []string
	createdAt   time.Time
	updatedAt   time.Time
}

type Params struct {
	OwnerID     uuid.UUID
	Name        string
	Address     string
	DistrictID  uuid.UUID
	Contact     string
	HourlyRate  HourlyRate
	Description string
	Opening     TimeOfDay
	Closing     TimeOfDay
	Unit        BookingUnit
	Coordinates Coordinates
	Images      []string
}

func NewField(p Params, now time.Time) (*Field, error) {
	if p.OwnerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	f := &Field{
		id:        uuid.New(),
		ownerID:   p.OwnerID,
		createdAt: now,
		updatedAt: now,
	}
	if err := f.apply(p); err != nil {
		return nil, err
	}
	return f, nil
}

// Reconstruct rebuilds a field from storage without re-running input validation.
func Reconstruct(id uuid.UUID, p Params, createdAt, updatedAt time.Time) *Field {
	return &Field{
		id:          id,
		ownerID:     p.OwnerID,
		name:        p.Name,
		address:     p.Address,
		districtID:  p.DistrictID,
		contact:     p.Contact,
		hourlyRate:  p.HourlyRate,
		description: p.Description,
		opening:     p.Opening,
		closing:     p.Closing,
		unit:        p.Unit,
		coordinates: p.Coordinates,
		images:      p.Images,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Patch carries a partial update. Nil members are left untouched.
type Patch struct {
	Name        *string
	Address     *string
	DistrictID  *uuid.UUID
	Contact     *string
	HourlyRate  *HourlyRate
	Description *string
	Opening     *TimeOfDay
	Closing     *TimeOfDay
	Unit        *BookingUnit
	Coordinates *Coordinates
	Images      *[]string
}

func (f *Field) Update(p Patch, now time.Time) error {
	next := f.Params()
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Address != nil {
		next.Address = *p.Address
	}
	if p.DistrictID != nil {
		next.DistrictID = *p.DistrictID
	}
	if p.Contact != nil {
		next.Contact = *p.Contact
	}
	if p.HourlyRate != nil {
		next.HourlyRate = *p.HourlyRate
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Opening != nil {
		next.Opening = *p.Opening
	}
	if p.Closing != nil {
		next.Closing = *p.Closing
	}
	if p.Unit != nil {
		next.Unit = *p.Unit
	}
	if p.Coordinates != nil {
		next.Coordinates = *p.Coordinates
	}
	if p.Images != nil {
		next.Images = *p.Images
	}
	if err := f.apply(next); err != nil {
		return err
	}
	f.updatedAt = now
	return nil
}

func (f *Field) apply(p Params) error {
	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		return ErrEmptyFieldName
	case len(name) > MaxNameLength:
		return ErrFieldNameTooLong
	}
	address := strings.TrimSpace(p.Address)
	switch {
	case address == "":
		return ErrEmptyAddress
	case len(address) > MaxAddressLength:
		return ErrAddressTooLong
	}
	contact := strings.TrimSpace(p.Contact)
	switch {
	case contact == "":
		return ErrEmptyContact
	case len(contact) > MaxContactLength:
		return ErrContactTooLong
	}
	if p.DistrictID == uuid.Nil {
		return ErrDistrictRequired
	}
	if len(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooBig
	}
	if p.Unit.Duration() <= 0 {
		p.Unit = BookingUnit{d: DefaultMinBookingDuration}
	}
	images, err := validateImages(p.Images)
	if err != nil {
		return err
	}

	f.name = name
	f.address = address
	f.districtID = p.DistrictID
	f.contact = contact
	f.hourlyRate = p.HourlyRate
	f.description = p.Description
	f.opening = p.Opening
	f.closing = p.Closing
	f.unit = p.Unit
	f.coordinates = p.Coordinates
	f.images = images
	return nil
}

func validateImages(in []string) ([]string, error) {
	if len(in) > MaxImages {
		return nil, ErrTooManyImages
	}
	out := make([]string, 0, len(in))
	for _, raw := range in {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, ErrInvalidImageURL
		}
		out = append(out, u.String())
	}
	return out, nil
}

func (f *Field) Params() Params {
	return Params{
		OwnerID:     f.ownerID,
		Name:        f.name,
		Address:     f.address,
		DistrictID:  f.districtID,
		Contact:     f.contact,
		HourlyRate:  f.hourlyRate,
		Description: f.description,
		Opening:     f.opening,
		Closing:     f.closing,
		Unit:        f.unit,
		Coordinates: f.coordinates,
		Images:      append([]string(nil), f.images...),
	}
}

func (f *Field) BookingRules() BookingRules {
	return BookingRules{Opening: f.opening, Closing: f.closing, Unit: f.unit}
}

func (f *Field) IsOwnedBy(userID uuid.UUID) bool { return f.ownerID == userID }

func (f *Field) ID() uuid.UUID            { return f.id }
func (f *Field) OwnerID() uuid.UUID       { return f.ownerID }
func (f *Field) Name() string             { return f.name }
func (f *Field) Address() string          { return f.address }
func (f *Field) DistrictID() uuid.UUID    { return f.districtID }
func (f *Field) Contact() string          { return f.contact }
func (f *Field) HourlyRate() HourlyRate   { return f.hourlyRate }
func (f *Field) Description() string      { return f.description }
func (f *Field) Opening() TimeOfDay       { return f.opening }
func (f *Field) Closing() TimeOfDay       { return f.closing }
func (f *Field) Unit() BookingUnit        { return f.unit }
func (f *Field) Coordinates() Coordinates { return f.coordinates }
func (f *Field) Images() []string         { return f.images }
func (f *Field) CreatedAt() time.Time     { return f.createdAt }
func (f *Field) UpdatedAt() time.Time     { return f.updatedAt }
