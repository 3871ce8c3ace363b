package unionfind

// UnionFind is a disjoint-set over a fixed universe of string keys.
// Keys must be inserted via New before Find or Union is called on them;
// there is no implicit insertion, so non-eligible names (e.g. a pair mate
// excluded from the current session) are simply never added.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// New creates a UnionFind with each of keys as its own singleton set.
// Duplicate keys are harmless — the second insertion is a no-op.
func New(keys []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(keys)),
		rank:   make(map[string]int, len(keys)),
	}
	for _, k := range keys {
		if _, ok := uf.parent[k]; ok {
			continue
		}
		uf.parent[k] = k
		uf.rank[k] = 0
	}
	return uf
}

// Find returns the canonical root of x's set, applying one-step path
// compression along the way: every node visited is relinked to its
// grandparent so future lookups shorten.
//
// Find panics if x was never inserted via New — this is a programmer
// error (querying a key outside the session's eligible population), not a
// recoverable condition.
func (uf *UnionFind) Find(x string) string {
	if _, ok := uf.parent[x]; !ok {
		panic("unionfind: key not present: " + x)
	}
	for uf.parent[x] != x {
		// Path compression: point x at its grandparent, then advance.
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing a and b, attaching the smaller-rank
// root under the larger. Equal ranks attach b's root under a's root and
// increment a's rank. Union is a no-op if a and b are already in the same
// set.
func (uf *UnionFind) Union(a, b string) {
	rootA, rootB := uf.Find(a), uf.Find(b)
	if rootA == rootB {
		return
	}
	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b string) bool {
	return uf.Find(a) == uf.Find(b)
}

// Groups returns every set as a map from canonical root to its members,
// in no particular order. Useful once all unions are complete, to derive
// rbl's components.
func (uf *UnionFind) Groups() map[string][]string {
	groups := make(map[string][]string)
	for k := range uf.parent {
		root := uf.Find(k)
		groups[root] = append(groups[root], k)
	}
	return groups
}
