package rbl

import (
	"sort"

	"campsort/model"
)

// CounselorRBL is the reduction-layer view of counselors for one session:
// each eligible counselor's admissible group domain. Counselors with no
// eligibility for the session are omitted entirely.
type CounselorRBL struct {
	Session         model.Session
	NumGroups       int
	CounselorDomain map[string]map[int]bool
}

// Counselors returns counselor names in sorted order, for stable iteration.
func (r *CounselorRBL) Counselors() []string {
	names := make([]string, 0, len(r.CounselorDomain))
	for name := range r.CounselorDomain {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Domain returns the sorted admissible group indices for a counselor.
func (r *CounselorRBL) Domain(name string) []int {
	domain := r.CounselorDomain[name]
	out := make([]int, 0, len(domain))
	for g := range domain {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// BuildCounselorRBL builds the CounselorRBL for session given numGroups.
// A counselor is included iff EligibleFor(session); their domain is a
// singleton if locked, otherwise every group index.
func BuildCounselorRBL(dataset model.Dataset, session model.Session, numGroups int) (*CounselorRBL, error) {
	if session != model.Morning && session != model.Afternoon {
		return nil, ErrUnknownSession
	}
	if numGroups <= 0 {
		return nil, ErrInvalidGroupCount
	}

	domain := make(map[string]map[int]bool)
	for _, c := range dataset.Counselors {
		if !c.EligibleFor(session) {
			continue
		}
		if lock := c.GroupLock(session); lock != nil {
			domain[c.Name] = map[int]bool{*lock: true}
			continue
		}
		domain[c.Name] = fullDomain(numGroups)
	}

	return &CounselorRBL{
		Session:         session,
		NumGroups:       numGroups,
		CounselorDomain: domain,
	}, nil
}

// CountEligibleCampers returns the number of campers eligible for session,
// used to size the afternoon group count.
func CountEligibleCampers(dataset model.Dataset, session model.Session) int {
	n := 0
	for _, c := range dataset.Campers {
		if c.EligibleFor(session) {
			n++
		}
	}
	return n
}

// CountEligibleCounselors returns the number of counselors eligible for
// session, used to size the afternoon group count.
func CountEligibleCounselors(dataset model.Dataset, session model.Session) int {
	n := 0
	for _, c := range dataset.Counselors {
		if c.EligibleFor(session) {
			n++
		}
	}
	return n
}
