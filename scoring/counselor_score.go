package scoring

import (
	"fmt"
	"sort"

	"campsort/model"
)

// groupProfile is the per-group tally score_solution precomputes once: how
// many campers fall in each age band, and how many speak each language.
type groupProfile struct {
	ageBandCounts  map[string]int
	languageCounts map[string]int
}

func buildGroupProfiles(campersByGroup map[int][]string, campersByName map[string]model.Camper) map[int]groupProfile {
	profiles := make(map[int]groupProfile, len(campersByGroup))
	for g, names := range campersByGroup {
		profile := groupProfile{ageBandCounts: map[string]int{}, languageCounts: map[string]int{}}
		for _, name := range names {
			camper := campersByName[name]
			if grade, ok := model.NormalizeGrade(camper.Grade); ok {
				profile.ageBandCounts[model.AgeBand(grade)]++
			}
			for _, lang := range camper.SpokenLanguages {
				profile.languageCounts[lang]++
			}
		}
		profiles[g] = profile
	}
	return profiles
}

// ScoreCounselors mirrors score_solution: preferred-age match, bidirectional
// language match, and pair/avoid bonuses and penalties, scored per
// counselor against the group they were staffed to. Breakdown entries are
// sorted by counselor name for deterministic output.
func ScoreCounselors(campersByGroup map[int][]string, counselorAssignment map[string]int, dataset model.Dataset) (float64, []Breakdown) {
	campersByName := dataset.CamperByName()
	counselorsByName := dataset.CounselorByName()
	profiles := buildGroupProfiles(campersByGroup, campersByName)

	names := make([]string, 0, len(counselorAssignment))
	for name := range counselorAssignment {
		names = append(names, name)
	}
	sort.Strings(names)

	var total float64
	breakdown := make([]Breakdown, 0, len(names))
	for _, name := range names {
		counselor := counselorsByName[name]
		g := counselorAssignment[name]
		profile := profiles[g]

		var score float64
		var reasons []string

		if counselor.PreferredAgeGroup != "" && profile.ageBandCounts[counselor.PreferredAgeGroup] > 0 {
			score += PreferredAgeMatch
			reasons = append(reasons, "preferred age group match")
		}

		for _, lang := range counselor.SpokenLanguages {
			if matches := profile.languageCounts[lang]; matches > 0 {
				score += float64(matches) * LanguageMatch
				reasons = append(reasons, fmt.Sprintf("%d language match(es): %s", matches, lang))
			}
		}

		for _, p := range counselor.PairWith {
			if pg, ok := counselorAssignment[p]; ok && pg == g {
				score += PairWith
				reasons = append(reasons, fmt.Sprintf("paired with %s", p))
			}
		}

		for _, a := range counselor.AvoidWith {
			if ag, ok := counselorAssignment[a]; ok && ag == g {
				score += AvoidWith
				reasons = append(reasons, fmt.Sprintf("avoid-with violation: %s", a))
			}
		}

		total += score
		breakdown = append(breakdown, Breakdown{Name: name, Score: score, Reasons: reasons})
	}
	return total, breakdown
}
