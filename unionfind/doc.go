// Package unionfind provides a disjoint-set (union-find) data structure
// over string keys, with path compression and union by rank.
//
// It underlies rbl's must-pair component construction: every eligible
// camper name for a session is inserted once, then Union is called for
// each hard pair_with edge. The resulting Find(x) partitions campers into
// the components that must end up in the same group.
//
// Complexity: both Find and Union are amortized near-constant time
// (inverse-Ackermann) per operation. There is no delete.
package unionfind
