package solver

import (
	"math"
	"sort"

	"campsort/model"
	"campsort/rbl"
)

// groupState tracks one group's camper load during search. Grades is
// treated as a stack: assign appends a component's grades, unassign pops
// the same count from the tail. This is safe only because assign/unassign
// calls nest strictly with the recursion.
type groupState struct {
	campers    int
	grades     []int
	components []string // assigned component roots, in assignment order
}

// engine owns every mutable piece of search state. It is created fresh for
// each Solve call and never shared across goroutines or calls.
type engine struct {
	camperRBL    *rbl.CamperRBL
	counselorRBL *rbl.CounselorRBL
	params       Params

	componentSize   map[string]int
	componentGrades map[string][]int

	groups     []groupState
	assignment map[string]int

	totalCounselors int
	steps           int // backtrack() call counter, for sparse cancellation checks
}

func newEngine(camperRBL *rbl.CamperRBL, counselorRBL *rbl.CounselorRBL, dataset model.Dataset, params Params) *engine {
	camperMap := dataset.CamperByName()

	e := &engine{
		camperRBL:       camperRBL,
		counselorRBL:    counselorRBL,
		params:          params,
		componentSize:   make(map[string]int, len(camperRBL.Components)),
		componentGrades: make(map[string][]int, len(camperRBL.Components)),
		groups:          make([]groupState, camperRBL.NumGroups),
		assignment:      make(map[string]int, len(camperRBL.Components)),
		totalCounselors: len(counselorRBL.CounselorDomain),
	}

	for root, members := range camperRBL.Components {
		e.componentSize[root] = len(members)
		grades := make([]int, 0, len(members))
		for _, name := range members {
			g, _ := model.NormalizeGrade(camperMap[name].Grade)
			grades = append(grades, g)
		}
		e.componentGrades[root] = grades
	}

	return e
}

// selectNextComponent applies MRV: smallest domain first, ties broken by
// largest component first. Ties among equal (domain size, -size) pairs are
// broken by root name, for full determinism.
func (e *engine) selectNextComponent() string {
	var best string
	bestDomain, bestSize := math.MaxInt, -1
	for _, root := range e.camperRBL.Roots() {
		if _, assigned := e.assignment[root]; assigned {
			continue
		}
		domainLen := len(e.camperRBL.CompDomain[root])
		size := e.componentSize[root]
		switch {
		case best == "":
			best, bestDomain, bestSize = root, domainLen, size
		case domainLen < bestDomain:
			best, bestDomain, bestSize = root, domainLen, size
		case domainLen == bestDomain && size > bestSize:
			best, bestDomain, bestSize = root, domainLen, size
		}
	}
	return best
}

// candidateGroups returns root's domain sorted by ascending current camper
// count (least-loaded first), ties broken by ascending group index via a
// stable sort.
func (e *engine) candidateGroups(root string) []int {
	domain := e.camperRBL.Domain(root)
	sort.SliceStable(domain, func(i, j int) bool {
		return e.groups[domain[i]].campers < e.groups[domain[j]].campers
	})
	return domain
}

func (e *engine) violatesGroupSize(root string, g int) bool {
	return e.groups[g].campers+e.componentSize[root] > e.params.MaxGroupSize
}

func (e *engine) violatesGradeBand(root string, g int) bool {
	existing := e.groups[g].grades
	if len(existing) == 0 {
		return false
	}
	incoming := e.componentGrades[root]

	minG, maxG := minMax(existing)
	incMin, incMax := minMax(incoming)

	newMin, newMax := minG, maxG
	if incMin < newMin {
		newMin = incMin
	}
	if incMax > newMax {
		newMax = incMax
	}
	return newMax-newMin > e.params.GradeBandWidth
}

func (e *engine) violatesAvoid(root string, g int) bool {
	avoid := e.camperRBL.CompAvoid[root]
	if len(avoid) == 0 {
		return false
	}
	for _, other := range e.groups[g].components {
		if avoid[other] {
			return true
		}
	}
	return false
}

// neededCounselors is the staffing formula shared by both post-assign
// checks: max(ceil(campers/CamperPerCounselor), MinCounselorsPerGroup).
func (e *engine) neededCounselors(campers int) int {
	needed := int(math.Ceil(float64(campers) / float64(e.params.CamperPerCounselor)))
	if needed < e.params.MinCounselorsPerGroup {
		needed = e.params.MinCounselorsPerGroup
	}
	return needed
}

func (e *engine) violatesFutureCounselorFeasibility() bool {
	needed := 0
	for _, g := range e.groups {
		if g.campers > 0 {
			needed += e.neededCounselors(g.campers)
		}
	}
	return needed > e.totalCounselors
}

func (e *engine) violatesGroupCounselorCap(g int) bool {
	campers := e.groups[g].campers
	if campers == 0 {
		return false
	}
	needed := e.neededCounselors(campers)

	possible := 0
	for _, domain := range e.counselorRBL.CounselorDomain {
		if domain[g] {
			possible++
		}
	}
	return needed > possible
}

func (e *engine) violatesExtremeImbalance(g int) bool {
	return e.groups[g].campers > e.params.MaxGroupSize
}

// assign places root into group g, extending its grade stack.
func (e *engine) assign(root string, g int) {
	e.assignment[root] = g
	e.groups[g].campers += e.componentSize[root]
	e.groups[g].grades = append(e.groups[g].grades, e.componentGrades[root]...)
	e.groups[g].components = append(e.groups[g].components, root)
}

// unassign is the exact inverse of assign: pop the same number of grades
// off the tail, drop the camper count, and remove root from the group's
// component list and the assignment map.
func (e *engine) unassign(root string, g int) {
	delete(e.assignment, root)
	e.groups[g].campers -= e.componentSize[root]

	n := len(e.componentGrades[root])
	e.groups[g].grades = e.groups[g].grades[:len(e.groups[g].grades)-n]

	comps := e.groups[g].components
	for i := len(comps) - 1; i >= 0; i-- {
		if comps[i] == root {
			e.groups[g].components = append(comps[:i], comps[i+1:]...)
			break
		}
	}
}

func minMax(values []int) (min, max int) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
