// Package rbl implements the reduction layer that turns a raw Dataset and
// a Session into constraint-ready structures for the solver: must-pair
// components, per-component group domains, component-level avoid edges,
// counselor domains, and the number of afternoon groups the staffing
// ratios can support.
//
// BuildCamperRBL and BuildCounselorRBL are the two entry points; both are
// pure functions of (dataset, session, numGroups) and take no options.
// Neither mutates the Dataset.
package rbl
