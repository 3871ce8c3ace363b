// Package scoring computes the weighted objective defined over a finished
// grouping: counselor-side terms (preferred age group, language
// match, pair/avoid) and camper-side terms (friend-together, language
// match with assigned counselors, per-group gender balance), with a
// per-entity reason breakdown for each contribution.
//
// ScoreSolution is the single entry point; everything else in this
// package is a pure function of the Dataset plus the two assignment maps
// the solver and staffing packages produce.
package scoring
