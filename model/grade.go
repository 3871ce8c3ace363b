package model

// gradeValues normalizes the seven supported grade labels into the integer
// scale the solver and scorer operate on: K is 0, grades 1-6 map to
// themselves.
var gradeValues = map[string]int{
	"K": 0,
	"1": 1,
	"2": 2,
	"3": 3,
	"4": 4,
	"5": 5,
	"6": 6,
}

// NormalizeGrade converts a grade label ("K", "1", ..., "6") to its integer
// value. ok is false for any label outside the supported set.
func NormalizeGrade(grade string) (value int, ok bool) {
	value, ok = gradeValues[grade]
	return value, ok
}

// ageBandByGrade groups normalized grades into the three bands the scorer
// matches against counselor age preference.
var ageBandByGrade = map[int]string{
	0: "K-1", 1: "K-1",
	2: "2-3", 3: "2-3",
	4: "4-6", 5: "4-6", 6: "4-6",
}

// AgeBand returns the age-band tag ("K-1", "2-3", "4-6") for a normalized
// grade value. It returns "" if grade is outside 0-6.
func AgeBand(grade int) string {
	return ageBandByGrade[grade]
}
