// Package campsort orchestrates a full camp-session grouping: reduce a
// Dataset into constraint-ready components (rbl), search for a feasible
// camper assignment (solver), staff it with counselors (staffing), and
// score the result (scoring). Run is the single entry point; the
// subpackages are independently usable for callers who need finer control.
package campsort
