// Package solver implements the backtracking constraint-satisfaction
// search that assigns camper components (from rbl.CamperRBL) to groups.
//
// Search shape:
//  1. Variable selection (MRV): among unassigned components, pick the one
//     with the smallest domain, breaking ties toward the largest component
//     (force hard pieces in early).
//  2. Value ordering: candidate groups are tried least-loaded first
//     (stable sort on current camper count, so equal-load ties fall back to
//     ascending group index).
//  3. Pre-assign pruning: group-size cap, grade-band width, avoid edges.
//  4. Post-assign pruning: future counselor feasibility across all groups,
//     per-group counselor cap, and an extreme-imbalance safety check.
//  5. Recurse; on exhaustion, unassign and try the next candidate group.
//
// Solve returns the first complete feasible assignment, or ErrNoSolution
// once every branch is exhausted — a recoverable outcome, not a panic. The
// search never mutates its inputs; all state lives in an engine value
// scoped to a single Solve call.
package solver
