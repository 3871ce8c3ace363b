package model

// Demographics holds the attributes every person record shares, regardless
// of whether they are a Camper or a Counselor.
type Demographics struct {
	Name            string   // unique identifier; never empty
	AgeYears        int      // non-negative
	AgeMonths       int      // non-negative, 0-11 by convention
	Gender          string   // finite tag; at least {"M", "F"}
	SpokenLanguages []string // set of language tags, order not significant
}

// SharedLanguages returns the set of languages present in both a and b.
func SharedLanguages(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(a))
	for _, lang := range a {
		set[lang] = struct{}{}
	}
	var shared []string
	seen := make(map[string]struct{})
	for _, lang := range b {
		if _, ok := set[lang]; !ok {
			continue
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		shared = append(shared, lang)
	}
	return shared
}
