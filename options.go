package campsort

import (
	"campsort/rbl"
	"campsort/solver"
	"campsort/staffing"
)

// Option configures Run. Mirrors the functional-options shape
// lvlath/builder/options.go and lvlath/dijkstra use throughout the pack.
type Option func(*config)

type config struct {
	solverParams     solver.Params
	staffingParams   staffing.Params
	staffingStrategy staffing.Strategy
	groupCountParams rbl.GroupCountParams
	numGroups        int // 0 means "compute from session"
}

func newConfig(opts ...Option) config {
	solverParams := solver.DefaultParams()
	cfg := config{
		solverParams: solverParams,
		staffingParams: staffing.Params{
			CamperPerCounselor:    solverParams.CamperPerCounselor,
			MinCounselorsPerGroup: solverParams.MinCounselorsPerGroup,
		},
		staffingStrategy: staffing.Greedy,
		groupCountParams: rbl.DefaultGroupCountParams(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSolverParams overrides the backtracking search's scalar constraints.
func WithSolverParams(p solver.Params) Option {
	return func(c *config) { c.solverParams = p }
}

// WithStaffingParams overrides the counselor-staffing ratio independently
// of the solver's grouping constraints.
func WithStaffingParams(p staffing.Params) Option {
	return func(c *config) { c.staffingParams = p }
}

// WithStaffingStrategy selects Greedy (default) or Matching for phase 2.
func WithStaffingStrategy(s staffing.Strategy) Option {
	return func(c *config) { c.staffingStrategy = s }
}

// WithGroupCountParams overrides the afternoon group-count search bounds.
// Ignored for the morning session, whose group count is fixed.
func WithGroupCountParams(p rbl.GroupCountParams) Option {
	return func(c *config) { c.groupCountParams = p }
}

// WithNumGroups pins the number of groups instead of letting Run derive it
// (rbl.MorningGroupCount for mornings, rbl.SelectAfternoonGroupCount for
// afternoons).
func WithNumGroups(n int) Option {
	return func(c *config) { c.numGroups = n }
}
