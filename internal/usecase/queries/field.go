package queries

import (
	"context"
	"strconv"
	"strings"
	"time"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/pkg/errs"
	"football-field-booking/internal/pkg/isotime"

	"github.com/google/uuid"
)

var (
	ErrFieldNotFound = errs.ErrFieldNotFound
	ErrFieldAccess   = errs.ErrForbidden
)

// FieldFilters are exact-match filters for the field list.
type FieldFilters struct {
	Name    *string
	Address *string
}

// AvailabilityFilters holds the raw query parameters of an availability search.
// Values that fail to parse never fail the search.
type AvailabilityFilters struct {
	DistrictID string
	StartTime  string
	EndTime    string
	Latitude   string
	Longitude  string
}

type FieldReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context, criteria FieldListCriteria) ([]*FieldView, error)
	FindAvailable(ctx context.Context, criteria AvailabilityCriteria) ([]*FieldView, error)
}

type FieldQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context, filters FieldFilters, actor user.Actor) ([]*FieldView, error)
	FindAvailable(ctx context.Context, filters AvailabilityFilters) ([]*FieldView, error)
}

type fieldQueriesImpl struct {
	store FieldReadStore
	loc   *time.Location
}

// NewFieldQueries takes the zone naive availability timestamps are read in.
func NewFieldQueries(store FieldReadStore, loc *time.Location) FieldQueries {
	return &fieldQueriesImpl{store: store, loc: loc}
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	return v, nil
}

// List shows owners only their own fields. Everyone else sees all of them.
func (q *fieldQueriesImpl) List(ctx context.Context, filters FieldFilters, actor user.Actor) ([]*FieldView, error) {
	criteria := FieldListCriteria{Name: filters.Name, Address: filters.Address}

	grant := actor.Grant(user.ActionFieldList)
	switch grant.Scope {
	case user.ScopeAll:
	case user.ScopeOwn:
		ownerID := actor.ID
		criteria.OwnerID = &ownerID
	default:
		return nil, ErrFieldAccess
	}

	return q.store.List(ctx, criteria)
}

func (q *fieldQueriesImpl) FindAvailable(ctx context.Context, filters AvailabilityFilters) ([]*FieldView, error) {
	criteria, ok := q.availabilityCriteria(filters)
	if !ok {
		return []*FieldView{}, nil
	}

	views, err := q.store.FindAvailable(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if origin, ok := parseOrigin(filters.Latitude, filters.Longitude); ok {
		field.SortByProximity(views, origin, func(v *FieldView) field.Coordinates { return v.Coordinates })
	}
	return views, nil
}

// availabilityCriteria reports false when a present filter cannot match anything.
func (q *fieldQueriesImpl) availabilityCriteria(f AvailabilityFilters) (AvailabilityCriteria, bool) {
	var c AvailabilityCriteria

	if s := strings.TrimSpace(f.DistrictID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return c, false
		}
		c.DistrictID = &id
	}

	if f.StartTime != "" && f.EndTime != "" {
		start, err := isotime.Parse(f.StartTime, q.loc)
		if err != nil {
			return c, false
		}
		end, err := isotime.Parse(f.EndTime, q.loc)
		if err != nil {
			return c, false
		}
		c.Window = &field.Window{Start: start, End: end}
	}
	return c, true
}

func parseOrigin(lat, lon string) (field.Coordinates, bool) {
	if lat == "" || lon == "" {
		return field.Coordinates{}, false
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return field.Coordinates{}, false
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return field.Coordinates{}, false
	}
	origin, err := field.NewCoordinates(la, lo)
	if err != nil {
		return field.Coordinates{}, false
	}
	return origin, true
}
