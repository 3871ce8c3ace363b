// Package model defines the entity records campsort solves over: people,
// campers, counselors, sessions, and weekly availability.
//
// Camper and Counselor share only a small demographic prefix (name, age,
// gender, spoken languages). Rather than model that with inheritance, each
// embeds a Demographics value — composition keeps the two record types
// independent while still sharing field definitions where it matters for
// scoring and eligibility.
//
// All fields are plain, exported, and zero-value-safe. Optional values
// (group locks) are *int so "absent" and "locked to group 0" are
// distinguishable.
package model
