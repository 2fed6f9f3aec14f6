package usecase

import (
	"fmt"
	"main/model"
	"math"
)

// Weekly goal targets. Study is an hours-per-week goal; water is cups per
// day. Both match the dashboard's summary cards.
const (
	WeeklyStudyTargetHours = 40.0
	DailyWaterTargetCups   = 8.0
)

// percentOfGoal clamps goal progress to [0,100]. A zero target short-circuits
// to 0 so the summary never divides by zero.
func percentOfGoal(total, target float64) int {
	if target <= 0 {
		return 0
	}
	return int(math.Min(100, math.Round(total/target*100)))
}

// WeeklySummary builds the summary-card statistics for one tracker. Today
// figures use the closed today interval; week figures use the lower-bound
// week filter, which deliberately has no upper bound (an entry stamped in
// the future still counts toward the week).
func (svc *TrackerService) WeeklySummary(tracker model.TrackerType) []model.SummaryStat {
	now := svc.now()
	today := Today(now)
	weekStart := Last7Days(now).Start

	switch tracker {
	case model.TrackerStudy:
		var hoursToday, hoursWeek float64
		for _, e := range svc.store.StudyEntries() {
			if today.Contains(e.Timestamp) {
				hoursToday += e.DurationHours
			}
			if !e.Timestamp.Before(weekStart) {
				hoursWeek += e.DurationHours
			}
		}
		progress := percentOfGoal(hoursWeek, WeeklyStudyTargetHours)
		return []model.SummaryStat{
			{Label: "Today", Value: fmt.Sprintf("%.1fh", hoursToday)},
			{Label: "This Week", Value: fmt.Sprintf("%.1fh", hoursWeek)},
			{
				Label:   "Weekly Goal",
				Value:   fmt.Sprintf("%.1f/%.0fh", hoursWeek, WeeklyStudyTargetHours),
				Target:  fmt.Sprintf("%.0fh", WeeklyStudyTargetHours),
				Percent: &progress,
			},
		}

	case model.TrackerWorkout:
		var minutesToday float64
		var week []model.WorkoutEntry
		for _, e := range svc.store.WorkoutEntries() {
			if today.Contains(e.Timestamp) {
				minutesToday += e.DurationMinutes
			}
			if !e.Timestamp.Before(weekStart) {
				week = append(week, e)
			}
		}
		lastWorkout := "No workouts"
		if len(week) > 0 {
			lastWorkout = week[len(week)-1].Timestamp.Format("Jan 2")
		}
		return []model.SummaryStat{
			{Label: "Today", Value: fmt.Sprintf("%.0f mins", math.Round(minutesToday))},
			{Label: "Workouts This Week", Value: fmt.Sprintf("%d", len(week))},
			{Label: "Last Workout", Value: lastWorkout},
		}

	case model.TrackerMeal:
		var caloriesToday, waterToday float64
		for _, e := range svc.store.MealEntries() {
			if today.Contains(e.Timestamp) {
				caloriesToday += e.Calories
				waterToday += e.WaterIntakeCups
			}
		}
		progress := percentOfGoal(waterToday, DailyWaterTargetCups)
		return []model.SummaryStat{
			{Label: "Calories Today", Value: fmt.Sprintf("%.0f", math.Round(caloriesToday))},
			{
				Label:   "Water Intake",
				Value:   fmt.Sprintf("%.0f/%.0f cups", math.Round(waterToday), DailyWaterTargetCups),
				Target:  fmt.Sprintf("%.0f cups", DailyWaterTargetCups),
				Percent: &progress,
			},
			{Label: "Water Goal", Value: fmt.Sprintf("%d%% complete", progress)},
		}

	case model.TrackerSleep:
		entries := svc.store.SleepEntries()
		lastDuration := "0"
		if len(entries) > 0 {
			latest := entries[0]
			for _, e := range entries[1:] {
				if e.Timestamp.After(latest.Timestamp) {
					latest = e
				}
			}
			lastDuration = fmt.Sprintf("%.1f", latest.DurationHours)
		}
		var avgQuality float64
		if len(entries) > 0 {
			var sum float64
			for _, e := range entries {
				sum += float64(e.Quality)
			}
			avgQuality = sum / float64(len(entries))
		}
		return []model.SummaryStat{
			{Label: "Last Night", Value: lastDuration + "h"},
			{Label: "Quality Rating", Value: fmt.Sprintf("%.1f/5", avgQuality)},
			{Label: "Quality", Value: qualityText(avgQuality)},
		}
	}
	return nil
}

func qualityText(avg float64) string {
	switch {
	case avg >= 4:
		return "Excellent"
	case avg >= 3:
		return "Good"
	case avg >= 2:
		return "Fair"
	default:
		return "Poor"
	}
}
