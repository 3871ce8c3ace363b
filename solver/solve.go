package solver

import (
	"context"

	"campsort/model"
	"campsort/rbl"
)

// Solve runs the backtracking search described in doc.go and returns the
// first complete feasible assignment (component root -> group index), or
// ErrNoSolution if the search exhausts every branch. ctx is checked at
// sparse intervals so long searches can be cancelled cooperatively;
// cancellation surfaces as ctx.Err().
func Solve(ctx context.Context, camperRBL *rbl.CamperRBL, counselorRBL *rbl.CounselorRBL, dataset model.Dataset, params Params) (map[string]int, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e := newEngine(camperRBL, counselorRBL, dataset, params)

	if len(camperRBL.Components) == 0 {
		return map[string]int{}, nil
	}

	result, err := e.backtrack(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNoSolution
	}
	return result, nil
}

// CheckMinGroupSizes re-derives camper counts per group from a completed
// assignment and reports whether every group meets params.MinGroupSize.
// This is an advisory post-check: the solver never enforces a minimum
// group size during search, so callers that require a hard minimum must
// call this themselves.
func CheckMinGroupSizes(camperRBL *rbl.CamperRBL, assignment map[string]int, numGroups int, minGroupSize int) bool {
	counts := make([]int, numGroups)
	for root, g := range assignment {
		counts[g] += len(camperRBL.Components[root])
	}
	for _, c := range counts {
		if c < minGroupSize {
			return false
		}
	}
	return true
}

// backtrack recurses per doc.go's search shape. steps counts calls so
// cancellation is checked sparsely rather than on every recursive call,
// mirroring the deadline-check cadence of lvlath/tsp/bb.go.
func (e *engine) backtrack(ctx context.Context) (map[string]int, error) {
	e.steps++
	if e.steps&255 == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
	}

	if len(e.assignment) == len(e.camperRBL.Components) {
		out := make(map[string]int, len(e.assignment))
		for root, g := range e.assignment {
			out[root] = g
		}
		return out, nil
	}

	root := e.selectNextComponent()
	for _, g := range e.candidateGroups(root) {
		if e.violatesGroupSize(root, g) {
			continue
		}
		if e.violatesGradeBand(root, g) {
			continue
		}
		if e.violatesAvoid(root, g) {
			continue
		}

		e.assign(root, g)

		if e.violatesFutureCounselorFeasibility() || e.violatesGroupCounselorCap(g) || e.violatesExtremeImbalance(g) {
			e.unassign(root, g)
			continue
		}

		result, err := e.backtrack(ctx)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}

		e.unassign(root, g)
	}

	return nil, nil
}
