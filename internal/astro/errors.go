package astro

import "errors"

// ErrInvalidArgument is the single error kind raised by this package:
// a caller passed a non-physical input (mass ≤ 0, distance ≤ 0).
// The configuration layer is responsible for keeping inputs in range
// before the per-frame path; hitting this error is a programming bug,
// not a recoverable condition.
var ErrInvalidArgument = errors.New("astro: invalid argument")
