package queries

import (
	"context"
	"time"

	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrBookingAccess   = errs.ErrForbidden
)

// BookingFilters are exact-match filters for the booking list.
type BookingFilters struct {
	FieldName *string
	StartTime *time.Time
	EndTime   *time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, criteria BookingListCriteria) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters, actor user.Actor) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	rel := user.Relations{
		user.RelationBooker:     v.UserID == actor.ID,
		user.RelationFieldOwner: v.FieldOwnerID == actor.ID,
	}
	if !actor.Can(user.ActionBookingRead, rel) {
		return nil, ErrBookingAccess
	}
	return v, nil
}

// List returns the bookings the actor may read: users see their own, owners also see
// bookings on their fields and admins see everything.
func (q *bookingQueriesImpl) List(ctx context.Context, filters BookingFilters, actor user.Actor) ([]*BookingView, error) {
	grant := actor.Grant(user.ActionBookingRead)

	criteria := BookingListCriteria{
		FieldName: filters.FieldName,
		StartTime: filters.StartTime,
		EndTime:   filters.EndTime,
	}
	switch grant.Scope {
	case user.ScopeAll:
	case user.ScopeOwn:
		id := actor.ID
		if grant.Through(user.RelationBooker) {
			criteria.UserID = &id
		}
		if grant.Through(user.RelationFieldOwner) {
			criteria.FieldOwnerID = &id
		}
	default:
		return nil, ErrBookingAccess
	}

	return q.store.List(ctx, criteria)
}
