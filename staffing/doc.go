// Package staffing implements phase 2 of the pipeline: assigning eligible
// counselors to already-solved camper groups.
//
// The default Strategy is Greedy: for each group in ascending index order,
// take the first `needed` still-unassigned eligible counselors (in sorted
// name order) and assign them, failing the whole phase if any group comes
// up short. It never backtracks, so a pathological counselor domain can
// report no staffing when a feasible staffing exists elsewhere in the
// search space.
//
// The Matching strategy resolves that gap with an augmenting-path bipartite
// matcher (grounded on lvlath/flow/edmonds_karp.go's BFS augmenting-path
// idea, expressed directly over the counselor/group domain rather than a
// general graph type): it searches for a counselor-to-group assignment
// meeting every group's lower bound, backtracking across groups instead of
// committing greedily.
package staffing
