package solver

import "errors"

var (
	// ErrNoSolution is returned when the backtracking search exhausts
	// every branch without finding a complete feasible assignment. This is
	// a recoverable, expected outcome, not a programmer error.
	ErrNoSolution = errors.New("solver: no feasible grouping found")

	// ErrInvalidParams indicates a non-positive max group size or camper
	// per counselor, or a negative min group size, min counselors per
	// group, or grade band width.
	ErrInvalidParams = errors.New("solver: invalid parameter")
)
