package commands

import (
	"context"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/pkg/clock"
	"football-field-booking/internal/pkg/errs"
	"football-field-booking/internal/pkg/patch"
	"football-field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateFieldRequest struct {
	Name               string
	Address            string
	DistrictID         uuid.UUID
	Contact            string
	HourlyRate         string
	Description        string
	OpeningTime        string
	ClosingTime        string
	MinBookingDuration string // empty means the default of one hour
	Latitude           float64
	Longitude          float64
	Images             []string
}

// UpdateFieldRequest is a partial update. Nil members keep their stored value.
type UpdateFieldRequest struct {
	Name               *string
	Address            *string
	DistrictID         *uuid.UUID
	Contact            *string
	HourlyRate         *string
	Description        *string
	OpeningTime        *string
	ClosingTime        *string
	MinBookingDuration *string
	Latitude           *float64
	Longitude          *float64
	Images             *[]string
}

type CreateFieldResult struct {
	FieldID uuid.UUID
}

type FieldCommands interface {
	Create(ctx context.Context, req CreateFieldRequest, actor user.Actor) (*CreateFieldResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateFieldRequest, actor user.Actor) error
	Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error
}

type fieldUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFieldUseCase(uow shared.UnitOfWork, clk clock.Clock) FieldCommands {
	return &fieldUseCaseImpl{uow: uow, clock: clk}
}

func (uc *fieldUseCaseImpl) Create(ctx context.Context, req CreateFieldRequest, actor user.Actor) (*CreateFieldResult, error) {
	if actor.Grant(user.ActionFieldCreate).Scope == user.ScopeNone {
		return nil, ErrForbidden
	}

	params, err := createParams(req, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	f, err := field.NewField(params, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Fields().Create(ctx, tx.DB(), f)
		if derr != nil {
			return mapFieldWriteErr(derr)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateFieldResult{FieldID: createdID}, nil
}

func (uc *fieldUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateFieldRequest, actor user.Actor) error {
	p, err := updatePatch(req)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, derr := uc.ownedField(ctx, tx, id, actor, user.ActionFieldUpdate)
		if derr != nil {
			return derr
		}

		if req.Latitude != nil || req.Longitude != nil {
			current := f.Coordinates()
			coords, cerr := field.NewCoordinates(
				patch.Coalesce(req.Latitude, current.Latitude()),
				patch.Coalesce(req.Longitude, current.Longitude()),
			)
			if cerr != nil {
				return errs.Mark(cerr, ErrDomainValidation)
			}
			p.Coordinates = &coords
		}

		if derr = f.Update(p, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr = tx.Fields().Update(ctx, tx.DB(), f); derr != nil {
			return mapFieldWriteErr(derr)
		}
		return nil
	})
}

// Delete removes the field together with its images and bookings.
func (uc *fieldUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := uc.ownedField(ctx, tx, id, actor, user.ActionFieldDelete); derr != nil {
			return derr
		}
		if derr := tx.Fields().Delete(ctx, tx.DB(), id); derr != nil {
			return mapFieldWriteErr(derr)
		}
		return nil
	})
}

func (uc *fieldUseCaseImpl) ownedField(ctx context.Context, tx shared.Tx, id uuid.UUID, actor user.Actor, action user.Action) (*field.Field, error) {
	f, err := tx.Reads().FieldForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	rel := user.Relations{user.RelationFieldOwner: f.IsOwnedBy(actor.ID)}
	if !actor.Can(action, rel) {
		return nil, ErrForbidden
	}
	return f, nil
}

func mapFieldWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrFieldNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrDistrictNotFound
	default:
		return err
	}
}

func createParams(req CreateFieldRequest, ownerID uuid.UUID) (field.Params, error) {
	opening, err := field.ParseTimeOfDay(req.OpeningTime)
	if err != nil {
		return field.Params{}, err
	}
	closing, err := field.ParseTimeOfDay(req.ClosingTime)
	if err != nil {
		return field.Params{}, err
	}
	rate, err := field.ParseHourlyRate(req.HourlyRate)
	if err != nil {
		return field.Params{}, err
	}
	coords, err := field.NewCoordinates(req.Latitude, req.Longitude)
	if err != nil {
		return field.Params{}, err
	}

	var unit field.BookingUnit
	if req.MinBookingDuration != "" {
		if unit, err = field.ParseBookingUnit(req.MinBookingDuration); err != nil {
			return field.Params{}, err
		}
	}

	return field.Params{
		OwnerID:     ownerID,
		Name:        req.Name,
		Address:     req.Address,
		DistrictID:  req.DistrictID,
		Contact:     req.Contact,
		HourlyRate:  rate,
		Description: req.Description,
		Opening:     opening,
		Closing:     closing,
		Unit:        unit,
		Coordinates: coords,
		Images:      req.Images,
	}, nil
}

// updatePatch parses the textual members. Coordinates need the stored field and are
// resolved inside the transaction.
func updatePatch(req UpdateFieldRequest) (field.Patch, error) {
	p := field.Patch{
		Name:        req.Name,
		Address:     req.Address,
		DistrictID:  req.DistrictID,
		Contact:     req.Contact,
		Description: req.Description,
		Images:      req.Images,
	}
	if req.HourlyRate != nil {
		rate, err := field.ParseHourlyRate(*req.HourlyRate)
		if err != nil {
			return p, err
		}
		p.HourlyRate = &rate
	}
	if req.OpeningTime != nil {
		t, err := field.ParseTimeOfDay(*req.OpeningTime)
		if err != nil {
			return p, err
		}
		p.Opening = &t
	}
	if req.ClosingTime != nil {
		t, err := field.ParseTimeOfDay(*req.ClosingTime)
		if err != nil {
			return p, err
		}
		p.Closing = &t
	}
	if req.MinBookingDuration != nil {
		u, err := field.ParseBookingUnit(*req.MinBookingDuration)
		if err != nil {
			return p, err
		}
		p.Unit = &u
	}
	return p, nil
}
