package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// ErrValidationGap marks an offer whose commission fields cannot produce
	// earnings for its commission type.
	ErrValidationGap = errors.New("commission validation gap")

	ErrMissingSaleAmount           = fmt.Errorf("%w: sale amount is required", ErrValidationGap)
	ErrMissingCommissionPercentage = fmt.Errorf("%w: offer has no commission percentage", ErrValidationGap)
	ErrMissingCommissionAmount     = fmt.Errorf("%w: offer has no commission amount", ErrValidationGap)
	ErrHybridUnresolvable          = fmt.Errorf("%w: hybrid offer has neither a flat amount nor a sale percentage", ErrValidationGap)
	ErrUnknownCommissionType       = fmt.Errorf("%w: unknown commission type", ErrValidationGap)

	// ErrCommissionNotApplicable is returned for commission types that are
	// paid through another path. Callers treat it as a no-op.
	ErrCommissionNotApplicable = errors.New("commission not applicable to conversions")
)
