// Package analytics computes the aggregations the recruiter dashboard
// renders: pipeline distribution, score and experience breakdowns, top
// skills and the application timeline. All functions are pure and operate
// on a store snapshot.
package analytics

import (
	"sort"
	"strings"

	"hirelink/internal/store"
)

// StageCounts returns the number of applications per pipeline stage.
// Every stage is present in the result, including zero counts.
func StageCounts(apps []store.Application) map[store.Stage]int {
	counts := make(map[store.Stage]int, len(store.Stages))
	for _, stage := range store.Stages {
		counts[stage] = 0
	}
	for _, app := range apps {
		counts[app.Stage]++
	}
	return counts
}

// ScoreDistribution returns how many applications carry each score 1..5.
// Unscored applications are not counted.
func ScoreDistribution(apps []store.Application) map[int]int {
	counts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, app := range apps {
		if app.Score != nil {
			counts[*app.Score]++
		}
	}
	return counts
}

// Experience bands used by the dashboard breakdown.
const (
	BandEntry  = "Entry (0-2y)"
	BandJunior = "Junior (2-5y)"
	BandMid    = "Mid (5-10y)"
	BandSenior = "Senior (10y+)"
)

// ExperienceBreakdown buckets applications by years of experience.
func ExperienceBreakdown(apps []store.Application) map[string]int {
	counts := map[string]int{BandEntry: 0, BandJunior: 0, BandMid: 0, BandSenior: 0}
	for _, app := range apps {
		y := app.YearsOfExperience
		switch {
		case y >= 0 && y <= 2:
			counts[BandEntry]++
		case y <= 5:
			counts[BandJunior]++
		case y <= 10:
			counts[BandMid]++
		case y > 10:
			counts[BandSenior]++
		}
	}
	return counts
}

// SkillCount is one entry of the top-skills ranking.
type SkillCount struct {
	Skill string
	Count int
}

// TopSkills returns the n most frequent skills across all applications,
// most frequent first, ties broken alphabetically. Skills are stored
// lowercase so no normalization happens here.
func TopSkills(apps []store.Application, n int) []SkillCount {
	counts := map[string]int{}
	for _, app := range apps {
		for _, skill := range app.Skills {
			counts[skill]++
		}
	}
	ranked := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		ranked = append(ranked, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Skill < ranked[j].Skill
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DayCount is one day of the application timeline.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// Timeline returns applications per applied-at day, oldest first. Days
// with no applications are omitted.
func Timeline(apps []store.Application) []DayCount {
	counts := map[string]int{}
	for _, app := range apps {
		day := app.AppliedAt
		if idx := strings.IndexByte(day, 'T'); idx > 0 {
			day = day[:idx]
		}
		if day == "" {
			continue
		}
		counts[day]++
	}
	days := make([]DayCount, 0, len(counts))
	for day, count := range counts {
		days = append(days, DayCount{Date: day, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
