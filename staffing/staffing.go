package staffing

import (
	"context"

	"campsort/rbl"
)

// Assign resolves counselor-to-group staffing for the counselorRBL.NumGroups
// groups of counselorRBL's session. campersByGroup holds each group's final
// camper count (solver.Solve's assignment, tallied by the caller).
//
// The default strategy is Greedy; pass WithStrategy(Matching) to try the
// augmenting-path alternative when Greedy reports ErrInsufficientStaff but
// a feasible staffing is suspected to exist.
func Assign(ctx context.Context, counselorRBL *rbl.CounselorRBL, campersByGroup map[int]int, params Params, opts ...Option) (map[string]int, error) {
	cfg := newConfig(opts...)

	switch cfg.strategy {
	case Matching:
		return assignMatching(ctx, counselorRBL.CounselorDomain, campersByGroup, counselorRBL.NumGroups, params)
	default:
		return assignGreedy(counselorRBL.CounselorDomain, campersByGroup, counselorRBL.NumGroups, params)
	}
}
