package commands

import (
	"context"
	"time"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/pkg/clock"
	"football-field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FieldID uuid.UUID
	Start   time.Time
	End     time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, actor user.Actor) (*CreateBookingResult, error)
	Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	validator *booking.Validator
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, validator *booking.Validator) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, validator: validator}
}

// Create validates against the field and its bookings as they are inside the transaction.
// A conflicting insert that slips past validation is reported as an overlap.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, actor user.Actor) (*CreateBookingResult, error) {
	if actor.Grant(user.ActionBookingCreate).Scope == user.ScopeNone {
		return nil, ErrForbidden
	}

	slot := booking.NewTimeSlot(req.Start, req.End)

	var createdID uuid.UUID
	err := uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, derr := tx.Reads().FieldForBooking(ctx, req.FieldID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrFieldNotFound
			}
			return derr
		}

		existing, derr := tx.Reads().OverlappingBookings(ctx, f.ID(), slot.Start(), slot.End())
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if derr = uc.validator.Validate(slot, f.BookingRules(), existing, now, nil); derr != nil {
			return derr
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), booking.NewBooking(f.ID(), actor.ID, slot, now))
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) || infra.IsKind(derr, infra.KindExclusionViolated) {
				return booking.OverlapConflict()
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		if !actor.Can(user.ActionBookingDelete, snap.RelationsOf(actor.ID)) {
			return ErrForbidden
		}
		if derr = tx.Bookings().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		return nil
	})
}
