package staffing

import "math"

// Params bundles the scalars the staffing formula needs. Mirrors
// solver.Params' CamperPerCounselor/MinCounselorsPerGroup so the two
// packages can be configured independently (staffing has no dependency on
// solver).
type Params struct {
	CamperPerCounselor    int
	MinCounselorsPerGroup int
}

// Needed computes max(ceil(campers/CamperPerCounselor), MinCounselorsPerGroup),
// the staffing requirement both strategies enforce.
func (p Params) Needed(campers int) int {
	needed := int(math.Ceil(float64(campers) / float64(p.CamperPerCounselor)))
	if needed < p.MinCounselorsPerGroup {
		needed = p.MinCounselorsPerGroup
	}
	return needed
}
