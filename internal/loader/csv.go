package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"campsort/model"
)

// readRows opens path, reads its header row, and returns every data row as
// a lowercase-header-keyed map, mirroring pandas' `df.columns.str.strip()
// .str.lower()` normalization in parsing.py so column order in the source
// file never matters.
func readRows(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: read header of %s: %w", path, err)
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	if !containsColumn(header, "name") {
		return nil, fmt.Errorf("%w: %s has no \"name\" column", ErrMissingColumn, path)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func containsColumn(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}

// LoadCampers reads a camper CSV, mirroring parsing.py's load_campers.
func LoadCampers(path string) ([]model.Camper, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	campers := make([]model.Camper, 0, len(rows))
	for _, row := range rows {
		morningGroup, ok := parseOptionalInt(row["morning_group"])
		if !ok {
			return nil, fmt.Errorf("loader: camper %q: invalid morning_group", row["name"])
		}
		afternoonGroup, ok := parseOptionalInt(row["afternoon_group"])
		if !ok {
			return nil, fmt.Errorf("loader: camper %q: invalid afternoon_group", row["name"])
		}

		campers = append(campers, model.Camper{
			Demographics: model.Demographics{
				Name:            row["name"],
				AgeYears:        parseIntOrZero(row["age_years"]),
				AgeMonths:       parseIntOrZero(row["age_months"]),
				Gender:          strings.TrimSpace(row["gender"]),
				SpokenLanguages: parseList(row["spoken_languages"]),
			},
			Grade:               strings.TrimSpace(row["grade"]),
			PairWith:            parseList(row["pair_with"]),
			AvoidWith:           parseList(row["avoid_with"]),
			Siblings:            parseList(row["siblings"]),
			Friends:             parseList(row["friends"]),
			AttendsSummerSchool: parseBool(row["attends_summer_school"]),
			AttendsSummerCamp:   parseBool(row["attends_summer_camp"]),
			MorningGroup:        morningGroup,
			AfternoonGroup:      afternoonGroup,
		})
	}
	return campers, nil
}

// weekdayColumns lists the CSV column prefix for each model.Weekday, in
// order, so Schedule can be built by index instead of five repeated field
// lookups.
var weekdayColumns = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// LoadCounselors reads a counselor CSV, mirroring parsing.py's
// load_counselors. The five day_start/day_end/day_lunch column triples are
// folded into a model.Schedule instead of being kept as loose fields.
func LoadCounselors(path string) ([]model.Counselor, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	counselors := make([]model.Counselor, 0, len(rows))
	for _, row := range rows {
		morningGroup, ok := parseOptionalInt(row["morning_group"])
		if !ok {
			return nil, fmt.Errorf("loader: counselor %q: invalid morning_group", row["name"])
		}
		afternoonGroup, ok := parseOptionalInt(row["afternoon_group"])
		if !ok {
			return nil, fmt.Errorf("loader: counselor %q: invalid afternoon_group", row["name"])
		}

		var schedule model.Schedule
		for i, day := range weekdayColumns {
			schedule[i] = model.DaySchedule{
				Start: strings.TrimSpace(row[day+"_start"]),
				End:   strings.TrimSpace(row[day+"_end"]),
				Lunch: strings.TrimSpace(row[day+"_lunch"]),
			}
		}

		counselors = append(counselors, model.Counselor{
			Demographics: model.Demographics{
				Name:            row["name"],
				AgeYears:        parseIntOrZero(row["age_years"]),
				AgeMonths:       parseIntOrZero(row["age_months"]),
				Gender:          strings.TrimSpace(row["gender"]),
				SpokenLanguages: parseList(row["spoken_languages"]),
			},
			PairWith:          parseList(row["pair_with"]),
			AvoidWith:         parseList(row["avoid_with"]),
			MorningGroup:      morningGroup,
			AfternoonGroup:    afternoonGroup,
			Schedule:          schedule,
			PreferredAgeGroup: strings.TrimSpace(row["preferred_age_group"]),
			YearsOfExperience: parseIntOrZero(row["years_of_experience"]),
			IsSpeciality:      parseBool(row["is_speciality"]),
			WorksSummerSchool: parseBool(row["works_summer_school"]),
			WorksSummerCamp:   parseBool(row["works_summer_camp"]),
		})
	}
	return counselors, nil
}
