package model

// Camper extends Demographics with grouping constraints, soft-scoring
// hints, and session attendance flags.
type Camper struct {
	Demographics

	Grade string // one of "K","1",...,"6"; normalize with NormalizeGrade

	// Hard constraints, resolved into components by unionfind/rbl.
	PairWith  []string // must share a group with each named camper
	AvoidWith []string // must not share a group with each named camper

	// Soft hints, read only by scoring.
	Siblings []string
	Friends  []string

	AttendsSummerSchool bool
	AttendsSummerCamp   bool

	// Locks: nil means "no pre-assignment for this session".
	MorningGroup   *int
	AfternoonGroup *int
}

// GroupLock returns the pre-assigned group index for the given session, if
// any.
func (c Camper) GroupLock(session Session) *int {
	switch session {
	case Morning:
		return c.MorningGroup
	case Afternoon:
		return c.AfternoonGroup
	default:
		return nil
	}
}

// EligibleFor reports whether c participates in the given session at all.
// Morning serves camp-only campers (camp attendee, not also in summer
// school); afternoon serves every camp attendee.
func (c Camper) EligibleFor(session Session) bool {
	switch session {
	case Morning:
		return c.AttendsSummerCamp && !c.AttendsSummerSchool
	case Afternoon:
		return c.AttendsSummerCamp
	default:
		return false
	}
}
