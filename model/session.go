package model

// Session identifies which half of the camp day a grouping covers.
// Eligibility, which lock field is consulted, and the group count are all
// session-dependent (see rbl.BuildCamperRBL).
type Session int

const (
	// Morning serves camp-only campers: attends_summer_camp is true and
	// attends_summer_school is false.
	Morning Session = iota
	// Afternoon serves every summer-camp attendee.
	Afternoon
)

// String renders the session as its canonical lowercase tag.
func (s Session) String() string {
	switch s {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	default:
		return "unknown"
	}
}

// ParseSession maps the canonical tags "morning"/"afternoon" back to a
// Session. ok is false for any other input.
func ParseSession(tag string) (session Session, ok bool) {
	switch tag {
	case "morning":
		return Morning, true
	case "afternoon":
		return Afternoon, true
	default:
		return 0, false
	}
}
