package rbl

import (
	"sort"

	"campsort/model"
	"campsort/unionfind"
)

// CamperRBL is the reduction-layer view of campers for one session:
// must-pair components, each component's feasible-group domain, and
// component-level avoid edges.
type CamperRBL struct {
	Session    model.Session
	NumGroups  int
	Components map[string][]string        // root -> member names
	CompDomain map[string]map[int]bool    // root -> admissible group indices
	CompAvoid  map[string]map[string]bool // root -> other roots that must not share a group
}

// Roots returns the component roots in sorted order, giving callers a
// stable, deterministic iteration order over Components/CompDomain/
// CompAvoid.
func (r *CamperRBL) Roots() []string {
	roots := make([]string, 0, len(r.Components))
	for root := range r.Components {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}

// Domain returns the sorted admissible group indices for root.
func (r *CamperRBL) Domain(root string) []int {
	domain := r.CompDomain[root]
	out := make([]int, 0, len(domain))
	for g := range domain {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// BuildCamperRBL builds the CamperRBL for session given numGroups.
//
// Steps:
//  1. Determine the session-eligible camper population.
//  2. Union eligible campers across hard pair_with edges (cross-session or
//     non-eligible pair mates are silently dropped).
//  3. Group by root into Components.
//  4. Compute each component's domain as the intersection of member
//     domains; a lock narrows a member's domain to {lock}, otherwise it is
//     {0,...,numGroups-1}. An empty intersection is a hard failure.
//  5. Promote avoid_with edges to the component level; a same-component
//     avoid edge is a hard failure (pair/avoid contradiction).
func BuildCamperRBL(dataset model.Dataset, session model.Session, numGroups int) (*CamperRBL, error) {
	if session != model.Morning && session != model.Afternoon {
		return nil, ErrUnknownSession
	}
	if numGroups <= 0 {
		return nil, ErrInvalidGroupCount
	}

	campers := dataset.CamperByName()

	eligible := make([]string, 0, len(dataset.Campers))
	for _, c := range dataset.Campers {
		if c.EligibleFor(session) {
			eligible = append(eligible, c.Name)
		}
	}
	sort.Strings(eligible)

	isEligible := make(map[string]bool, len(eligible))
	for _, name := range eligible {
		isEligible[name] = true
	}

	uf := unionfind.New(eligible)
	for _, name := range eligible {
		camper := campers[name]
		for _, mate := range camper.PairWith {
			if !isEligible[mate] {
				continue
			}
			uf.Union(name, mate)
		}
	}

	components := make(map[string][]string)
	for _, name := range eligible {
		root := uf.Find(name)
		components[root] = append(components[root], name)
	}
	for root := range components {
		sort.Strings(components[root])
	}

	compDomain := make(map[string]map[int]bool, len(components))
	for root, members := range components {
		var domain map[int]bool
		for i, member := range members {
			memberDomain := camperDomain(campers[member], session, numGroups)
			if i == 0 {
				domain = memberDomain
				continue
			}
			domain = intersectDomains(domain, memberDomain)
		}
		if len(domain) == 0 {
			return nil, domainError(root, members)
		}
		compDomain[root] = domain
	}

	compAvoid := make(map[string]map[string]bool)
	for _, name := range eligible {
		camper := campers[name]
		rootC := uf.Find(name)
		for _, avoid := range camper.AvoidWith {
			if !isEligible[avoid] {
				continue
			}
			rootA := uf.Find(avoid)
			if rootA == rootC {
				return nil, contradictionError(name, avoid)
			}
			addAvoidEdge(compAvoid, rootC, rootA)
			addAvoidEdge(compAvoid, rootA, rootC)
		}
	}

	return &CamperRBL{
		Session:    session,
		NumGroups:  numGroups,
		Components: components,
		CompDomain: compDomain,
		CompAvoid:  compAvoid,
	}, nil
}

// camperDomain returns the admissible group set for a single camper: a
// singleton if locked for this session, otherwise every group.
func camperDomain(c model.Camper, session model.Session, numGroups int) map[int]bool {
	if lock := c.GroupLock(session); lock != nil {
		return map[int]bool{*lock: true}
	}
	return fullDomain(numGroups)
}

func fullDomain(numGroups int) map[int]bool {
	domain := make(map[int]bool, numGroups)
	for g := 0; g < numGroups; g++ {
		domain[g] = true
	}
	return domain
}

func intersectDomains(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for g := range a {
		if b[g] {
			out[g] = true
		}
	}
	return out
}

func addAvoidEdge(avoid map[string]map[string]bool, from, to string) {
	if avoid[from] == nil {
		avoid[from] = make(map[string]bool)
	}
	avoid[from][to] = true
}
