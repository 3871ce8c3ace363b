package staffing

import "sort"

// assignGreedy visits each group in ascending index order and takes the
// first `needed` still-unassigned eligible counselors in sorted-name
// order. No backtracking — once a group claims a counselor, no later
// group can use it and the earlier choice is never revisited.
func assignGreedy(domain map[string]map[int]bool, campersByGroup map[int]int, numGroups int, params Params) (map[string]int, error) {
	available := make(map[string]bool, len(domain))
	names := make([]string, 0, len(domain))
	for name := range domain {
		available[name] = true
		names = append(names, name)
	}
	sort.Strings(names)

	assignment := make(map[string]int)
	for g := 0; g < numGroups; g++ {
		needed := params.Needed(campersByGroup[g])

		var eligible []string
		for _, name := range names {
			if available[name] && domain[name][g] {
				eligible = append(eligible, name)
			}
		}
		if len(eligible) < needed {
			return nil, ErrInsufficientStaff
		}

		for _, name := range eligible[:needed] {
			assignment[name] = g
			available[name] = false
		}
	}
	return assignment, nil
}
