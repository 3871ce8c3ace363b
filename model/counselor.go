package model

// Counselor extends Demographics with hard pairing constraints, weekly
// availability, and staffing preferences.
type Counselor struct {
	Demographics

	PairWith  []string
	AvoidWith []string

	MorningGroup   *int
	AfternoonGroup *int

	Schedule Schedule

	PreferredAgeGroup string // age-band tag, e.g. "K-1"; "" means no preference
	YearsOfExperience int
	IsSpeciality      bool

	WorksSummerSchool bool
	WorksSummerCamp   bool
}

// GroupLock returns the pre-assigned group index for the given session, if
// any.
func (c Counselor) GroupLock(session Session) *int {
	switch session {
	case Morning:
		return c.MorningGroup
	case Afternoon:
		return c.AfternoonGroup
	default:
		return nil
	}
}

// worksSession reports whether the counselor works the given session at
// all, ignoring weekly availability.
func (c Counselor) worksSession(session Session) bool {
	switch session {
	case Morning:
		return c.WorksSummerSchool
	case Afternoon:
		return c.WorksSummerCamp
	default:
		return false
	}
}

// EligibleFor reports whether c may be staffed for the given session: they
// must work that session and have at least one weekday with both a start
// and end time set.
func (c Counselor) EligibleFor(session Session) bool {
	return c.worksSession(session) && c.Schedule.AnyAvailable()
}

// CanPairWith reports whether c and other may share a group: neither names
// the other in AvoidWith. The relation is symmetric by construction, so
// either order of arguments yields the same answer.
func (c Counselor) CanPairWith(other Counselor) bool {
	return !contains(c.AvoidWith, other.Name) && !contains(other.AvoidWith, c.Name)
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
