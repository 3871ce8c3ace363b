package scoring

import (
	"fmt"
	"sort"

	"campsort/model"
)

// ScoreCampers mirrors score_campers: a per-group gender-balance term plus
// per-camper friend-together and language-match-with-counselor bonuses.
// Campers whose individual score is exactly 0 are omitted from the
// breakdown, matching the original's `if camper_score > 0` filter. Groups
// and names are iterated in sorted order for deterministic output, unlike
// the original's dict-insertion order; the total is unaffected either way.
func ScoreCampers(campersByGroup map[int][]string, counselorAssignment map[string]int, dataset model.Dataset) (float64, []Breakdown) {
	campersByName := dataset.CamperByName()
	counselorsByName := dataset.CounselorByName()

	groups := make([]int, 0, len(campersByGroup))
	for g := range campersByGroup {
		groups = append(groups, g)
	}
	sort.Ints(groups)

	var total float64
	var breakdown []Breakdown

	for _, g := range groups {
		balance := GenderBalanceScore(campersByGroup[g], campersByName)
		groupScore := balance * GenderBalance
		total += groupScore
		breakdown = append(breakdown, Breakdown{
			Name:    fmt.Sprintf("Group %d", g+1),
			Score:   groupScore,
			Reasons: []string{fmt.Sprintf("gender balance = %.2f", balance)},
		})
	}

	for _, g := range groups {
		names := campersByGroup[g]
		inGroup := make(map[string]bool, len(names))
		for _, n := range names {
			inGroup[n] = true
		}

		var counselorsInGroup []string
		for counselorName, cg := range counselorAssignment {
			if cg == g {
				counselorsInGroup = append(counselorsInGroup, counselorName)
			}
		}
		sort.Strings(counselorsInGroup)

		sortedNames := append([]string(nil), names...)
		sort.Strings(sortedNames)

		for _, name := range sortedNames {
			camper := campersByName[name]
			var score float64
			var reasons []string

			for _, f := range camper.Friends {
				if inGroup[f] {
					score += FriendTogether
					reasons = append(reasons, fmt.Sprintf("friend with %s", f))
				}
			}

			for _, counselorName := range counselorsInGroup {
				counselor := counselorsByName[counselorName]
				shared := model.SharedLanguages(camper.SpokenLanguages, counselor.SpokenLanguages)
				if len(shared) > 0 {
					score += LanguageMatchCounselor
					reasons = append(reasons, fmt.Sprintf("language match with %s: %v", counselorName, shared))
				}
			}

			if score > 0 {
				total += score
				breakdown = append(breakdown, Breakdown{Name: name, Score: score, Reasons: reasons})
			}
		}
	}

	return total, breakdown
}
