package commands

import "football-field-booking/internal/pkg/errs"

var (
	ErrFieldNotFound    = errs.ErrFieldNotFound
	ErrBookingNotFound  = errs.ErrBookingNotFound
	ErrDistrictNotFound = errs.ErrDistrictNotFound
	ErrForbidden        = errs.ErrForbidden
	ErrDomainValidation = errs.ErrDomainValidation
)
