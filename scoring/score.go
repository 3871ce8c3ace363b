package scoring

import "campsort/model"

// Breakdown is one scored line item: an entity's name, its contribution to
// the total, and the human-readable reasons behind it.
type Breakdown struct {
	Name    string
	Score   float64
	Reasons []string
}

// Result is the full scored-solution output, mirroring
// score_full_solution's three-tuple (total, counselor breakdown, camper
// breakdown).
type Result struct {
	Total              float64
	CounselorBreakdown []Breakdown
	CamperBreakdown    []Breakdown
}

// ScoreSolution scores a finished grouping against dataset: campersByGroup
// maps each group index to its camper names, counselorAssignment maps each
// counselor name to the group they were staffed to.
func ScoreSolution(campersByGroup map[int][]string, counselorAssignment map[string]int, dataset model.Dataset) Result {
	counselorScore, counselorBreakdown := ScoreCounselors(campersByGroup, counselorAssignment, dataset)
	camperScore, camperBreakdown := ScoreCampers(campersByGroup, counselorAssignment, dataset)

	return Result{
		Total:              counselorScore + camperScore,
		CounselorBreakdown: counselorBreakdown,
		CamperBreakdown:    camperBreakdown,
	}
}
