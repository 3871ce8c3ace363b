package scoring

// Weight constants mirror the reference WEIGHTS and CAMPER_WEIGHTS tables
// exactly. They are float64 because the gender-balance term is a
// continuous fraction, not an integer count.
const (
	PreferredAgeMatch = 10.0
	LanguageMatch     = 2.0
	PairWith          = 8.0
	AvoidWith         = -15.0

	FriendTogether         = 5.0
	LanguageMatchCounselor = 3.0
	GenderBalance          = 10.0 // per group, not per camper
)
