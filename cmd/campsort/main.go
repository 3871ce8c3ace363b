// Command campsort runs the grouping pipeline against a pair of camper and
// counselor CSV files and prints the scored result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"campsort"
	"campsort/internal/applog"
	"campsort/internal/loader"
	"campsort/model"
	"campsort/staffing"
)

type reportCounselor struct {
	Name  string   `json:"name"`
	Group int      `json:"group"`
	Score float64  `json:"score"`
	Why   []string `json:"why,omitempty"`
}

type reportCamper struct {
	Name  string `json:"name"`
	Group int    `json:"group"`
}

type report struct {
	Session    string             `json:"session"`
	Campers    []reportCamper     `json:"campers"`
	Counselors []reportCounselor  `json:"counselors"`
	TotalScore float64            `json:"total_score"`
	Groups     map[string][]string `json:"groups"`
}

func main() {
	campersPath := flag.String("campers", "", "path to campers CSV")
	counselorsPath := flag.String("counselors", "", "path to counselors CSV")
	sessionFlag := flag.String("session", "afternoon", "session to solve: morning or afternoon")
	strategyFlag := flag.String("strategy", "greedy", "staffing strategy: greedy or matching")
	outputPath := flag.String("json", "", "path to write the JSON report; stdout if empty")
	prod := flag.Bool("prod", false, "use zap's production logging encoder")
	flag.Parse()

	if err := applog.Init(*prod); err != nil {
		fmt.Fprintln(os.Stderr, "campsort: logger init:", err)
		os.Exit(1)
	}
	logger := applog.L()
	defer logger.Sync()

	if *campersPath == "" || *counselorsPath == "" {
		logger.Fatal("campers and counselors CSV paths are required")
	}

	session, ok := model.ParseSession(*sessionFlag)
	if !ok {
		logger.Fatal("unknown session", zap.String("session", *sessionFlag))
	}

	strategy, ok := parseStrategy(*strategyFlag)
	if !ok {
		logger.Fatal("unknown staffing strategy", zap.String("strategy", *strategyFlag))
	}

	campers, err := loader.LoadCampers(*campersPath)
	if err != nil {
		logger.Fatal("loading campers", zap.Error(err))
	}
	counselors, err := loader.LoadCounselors(*counselorsPath)
	if err != nil {
		logger.Fatal("loading counselors", zap.Error(err))
	}

	dataset := model.Dataset{Campers: campers, Counselors: counselors}
	logger.Info("dataset loaded", zap.Int("campers", len(campers)), zap.Int("counselors", len(counselors)))

	result, err := campsort.Run(context.Background(), dataset, session, campsort.WithStaffingStrategy(strategy))
	if err != nil {
		logger.Fatal("solve failed", zap.Error(err))
	}

	rep := buildReport(*sessionFlag, result)
	if err := writeReport(rep, *outputPath); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}
	logger.Info("done", zap.Float64("total_score", rep.TotalScore))
}

func parseStrategy(tag string) (staffing.Strategy, bool) {
	switch tag {
	case "greedy":
		return staffing.Greedy, true
	case "matching":
		return staffing.Matching, true
	default:
		return staffing.Greedy, false
	}
}

func buildReport(session string, result *campsort.Result) report {
	rep := report{
		Session:    session,
		TotalScore: result.Score.Total,
		Groups:     make(map[string][]string, len(result.CampersByGroup)),
	}

	for name, g := range result.CamperAssignment {
		rep.Campers = append(rep.Campers, reportCamper{Name: name, Group: g})
	}
	for g, names := range result.CampersByGroup {
		rep.Groups[fmt.Sprintf("%d", g)] = names
	}

	scoreByName := make(map[string]float64, len(result.Score.CounselorBreakdown))
	reasonsByName := make(map[string][]string, len(result.Score.CounselorBreakdown))
	for _, b := range result.Score.CounselorBreakdown {
		scoreByName[b.Name] = b.Score
		reasonsByName[b.Name] = b.Reasons
	}
	for name, g := range result.CounselorAssignment {
		rep.Counselors = append(rep.Counselors, reportCounselor{
			Name:  name,
			Group: g,
			Score: scoreByName[name],
			Why:   reasonsByName[name],
		})
	}

	return rep
}

func writeReport(rep report, path string) error {
	encoded, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("campsort: encode report: %w", err)
	}

	if path == "" {
		fmt.Println(string(encoded))
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("campsort: create %s: %w", path, err)
	}
	defer file.Close()

	_, err = file.Write(encoded)
	return err
}
