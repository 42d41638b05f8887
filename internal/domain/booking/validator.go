package booking

import (
	"time"

	"football-field-booking/internal/domain/field"

	"github.com/google/uuid"
)

type Validator struct {
	loc *time.Location
}

// NewValidator anchors operating hours in loc.
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{loc: loc}
}

// Validate checks a candidate slot against the field's current rules and the bookings already on it.
// Checks run in a fixed order and stop at the first failure. excludeID skips the booking being
// re-validated.
func (v *Validator) Validate(
	slot TimeSlot,
	rules field.BookingRules,
	existing []Existing,
	now time.Time,
	excludeID *uuid.UUID,
) error {
	start, end := slot.Start(), slot.End()

	if !start.After(now) {
		return newValidationError(ErrInvalidTiming, MsgStartInPast)
	}
	if !end.After(start) {
		return newValidationError(ErrInvalidTiming, MsgEndBeforeStart)
	}

	unit := rules.Unit
	d := slot.Duration()
	if d < unit.Duration() {
		return tooShort(unit.Minutes())
	}
	// exact integer arithmetic on nanoseconds
	if d%unit.Duration() != 0 {
		return notAMultiple(unit.Minutes())
	}

	// both ends are compared against the window of start's calendar date
	opening := rules.Opening.On(start, v.loc)
	closing := rules.Closing.On(start, v.loc)
	startInside := !start.Before(opening) && start.Before(closing)
	endInside := end.After(opening) && !end.After(closing)
	if !startInside || !endInside {
		return newValidationError(ErrOutsideOperatingHours, MsgOutsideHours)
	}

	for _, e := range existing {
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if slot.Overlaps(e.Start, e.End) {
			return OverlapConflict()
		}
	}
	return nil
}
