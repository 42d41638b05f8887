package booking

import (
	"errors"
	"fmt"
)

// Kinds of booking validation failure. Match them with errors.Is.
var (
	ErrInvalidTiming           = errors.New("invalid timing")
	ErrDurationPolicyViolation = errors.New("duration policy violation")
	ErrOutsideOperatingHours   = errors.New("outside operating hours")
	ErrOverlapConflict         = errors.New("overlap conflict")
)

const (
	MsgStartInPast     = "Start time must be in the future."
	MsgEndBeforeStart  = "End time must be after start time."
	MsgOutsideHours    = "Booking times must be within the field's working hours."
	MsgAlreadyBooked   = "This field is already booked for the given time."
	msgTooShortFmt     = "Booking duration must be at least %d minutes."
	msgNotAMultipleFmt = "Booking duration must be a multiple of the minimum booking duration (%d minutes)."
)

// ValidationError is a rejected booking. Message is safe to show to the caller.
type ValidationError struct {
	kind    error
	message string
}

func (e *ValidationError) Error() string   { return e.message }
func (e *ValidationError) Unwrap() error   { return e.kind }
func (e *ValidationError) Kind() error     { return e.kind }
func (e *ValidationError) Message() string { return e.message }

func newValidationError(kind error, message string) *ValidationError {
	return &ValidationError{kind: kind, message: message}
}

func tooShort(minutes int64) *ValidationError {
	return newValidationError(ErrDurationPolicyViolation, fmt.Sprintf(msgTooShortFmt, minutes))
}

func notAMultiple(minutes int64) *ValidationError {
	return newValidationError(ErrDurationPolicyViolation, fmt.Sprintf(msgNotAMultipleFmt, minutes))
}

// OverlapConflict is reported when storage rejects a booking that raced past validation.
func OverlapConflict() *ValidationError {
	return newValidationError(ErrOverlapConflict, MsgAlreadyBooked)
}
