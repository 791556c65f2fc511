package beam

import "errors"

// Sentinel errors for construction, load addition and calculation.
// Returned values wrap these with the offending parameter; classify
// with errors.Is.
var (
	ErrInvalidParameter   = errors.New("beam: invalid parameter")
	ErrLoadOutOfBounds    = errors.New("beam: load out of bounds")
	ErrPreconditionNotMet = errors.New("beam: precondition not met")
)
