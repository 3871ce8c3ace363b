package rbl

import (
	"errors"
	"fmt"
)

// Sentinel errors for RBL construction. These are structural-infeasibility
// signals — bugs in the input, not search failures — and so are returned
// as errors rather than a failure sentinel value.
var (
	// ErrEmptyDomain indicates a component's member eligibilities
	// intersect to nothing: no group can legally hold every member.
	ErrEmptyDomain = errors.New("rbl: component has empty domain")

	// ErrPairAvoidContradiction indicates a camper's pair_with and
	// avoid_with simultaneously reference the same must-pair component.
	ErrPairAvoidContradiction = errors.New("rbl: pair/avoid contradiction")

	// ErrUnknownSession indicates a Session value outside {Morning, Afternoon}.
	ErrUnknownSession = errors.New("rbl: unknown session")

	// ErrInvalidGroupCount indicates numGroups <= 0.
	ErrInvalidGroupCount = errors.New("rbl: group count must be positive")
)

// domainError reports an empty-domain failure naming the offending root
// and its members, so callers get a diagnostic rather than a bare sentinel.
func domainError(root string, members []string) error {
	return fmt.Errorf("%w: root=%s members=%v", ErrEmptyDomain, root, members)
}

// contradictionError reports a pair/avoid contradiction naming both names
// involved.
func contradictionError(a, b string) error {
	return fmt.Errorf("%w: %s and %s are both pair_with and avoid_with connected", ErrPairAvoidContradiction, a, b)
}
