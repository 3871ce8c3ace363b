package staffing

import "errors"

// ErrInsufficientStaff is returned when a strategy cannot meet every
// group's staffing minimum from the eligible counselor pool. This is a
// recoverable outcome, not a programmer error.
var ErrInsufficientStaff = errors.New("staffing: insufficient eligible counselors")
