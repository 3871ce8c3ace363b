package campsort

import (
	"context"

	"campsort/model"
	"campsort/rbl"
	"campsort/scoring"
	"campsort/solver"
	"campsort/staffing"
)

// Result is everything a solved session produces: the camper grouping (by
// name and by group), the counselor staffing, and the objective score with
// its reason breakdown.
type Result struct {
	CamperAssignment    map[string]int // camper name -> group index
	CampersByGroup      map[int][]string
	CounselorAssignment map[string]int // counselor name -> group index
	Score               scoring.Result
}

// Run executes the full pipeline for one session against dataset: reduce
// (rbl), solve (solver), staff (staffing), and score (scoring). It returns
// whichever stage's error surfaces first; a nil error means every stage
// produced a feasible result.
func Run(ctx context.Context, dataset model.Dataset, session model.Session, opts ...Option) (*Result, error) {
	if session != model.Morning && session != model.Afternoon {
		return nil, ErrUnknownSession
	}
	cfg := newConfig(opts...)

	numGroups := cfg.numGroups
	if numGroups == 0 {
		numGroups = resolveNumGroups(dataset, session, cfg)
	}

	camperRBL, err := rbl.BuildCamperRBL(dataset, session, numGroups)
	if err != nil {
		return nil, err
	}
	counselorRBL, err := rbl.BuildCounselorRBL(dataset, session, numGroups)
	if err != nil {
		return nil, err
	}

	componentAssignment, err := solver.Solve(ctx, camperRBL, counselorRBL, dataset, cfg.solverParams)
	if err != nil {
		return nil, err
	}

	camperAssignment, campersByGroup := expandComponents(camperRBL, componentAssignment)

	campersByGroupCounts := make(map[int]int, len(campersByGroup))
	for g, names := range campersByGroup {
		campersByGroupCounts[g] = len(names)
	}

	counselorAssignment, err := staffing.Assign(ctx, counselorRBL, campersByGroupCounts, cfg.staffingParams, staffing.WithStrategy(cfg.staffingStrategy))
	if err != nil {
		return nil, err
	}

	score := scoring.ScoreSolution(campersByGroup, counselorAssignment, dataset)

	return &Result{
		CamperAssignment:    camperAssignment,
		CampersByGroup:      campersByGroup,
		CounselorAssignment: counselorAssignment,
		Score:               score,
	}, nil
}

// resolveNumGroups picks the group count Run uses when WithNumGroups was
// not given: fixed for the morning session, headcount-derived for the
// afternoon one.
func resolveNumGroups(dataset model.Dataset, session model.Session, cfg config) int {
	if session == model.Morning {
		return rbl.MorningGroupCount
	}
	eligibleCampers := rbl.CountEligibleCampers(dataset, session)
	eligibleCounselors := rbl.CountEligibleCounselors(dataset, session)
	return rbl.SelectAfternoonGroupCount(eligibleCampers, eligibleCounselors, cfg.groupCountParams)
}

// expandComponents turns the solver's component-root assignment into a
// per-camper assignment and a per-group member list.
func expandComponents(camperRBL *rbl.CamperRBL, componentAssignment map[string]int) (map[string]int, map[int][]string) {
	camperAssignment := make(map[string]int)
	campersByGroup := make(map[int][]string)
	for root, g := range componentAssignment {
		for _, member := range camperRBL.Components[root] {
			camperAssignment[member] = g
			campersByGroup[g] = append(campersByGroup[g], member)
		}
	}
	return camperAssignment, campersByGroup
}
