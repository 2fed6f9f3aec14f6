package usecase

import (
	"main/model"
	"main/repository"
	"math"
	"time"
)

// TrackerService is the read side of the dashboard: it turns the raw entry
// logs into day-bucketed chart series, categorical breakdowns, and summary
// statistics. Every method recomputes from the current log state; nothing is
// cached between reads.
type TrackerService struct {
	store *repository.EntryStore
	now   func() time.Time
}

func NewTrackerService(store *repository.EntryStore) *TrackerService {
	return &TrackerService{store: store, now: time.Now}
}

// NewTrackerServiceWithClock injects a fixed clock for tests.
func NewTrackerServiceWithClock(store *repository.EntryStore, now func() time.Time) *TrackerService {
	return &TrackerService{store: store, now: now}
}

type weekDay struct {
	label  string
	date   string
	window model.Window
}

// weekDays returns the 7 calendar days ending today, oldest first. Each day
// carries its closed day-window for entry filtering.
func weekDays(now time.Time) []weekDay {
	days := make([]weekDay, 0, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		days = append(days, weekDay{
			label:  d.Format("Mon"),
			date:   d.Format("2006-01-02"),
			window: Today(d),
		})
	}
	return days
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DailyBuckets returns exactly 7 buckets for the tracker, oldest to newest,
// ending on today. Days without entries carry zero values. The second return
// reports whether any day has data in the tracker's primary metric, which
// chart consumers use to decide between a chart and an empty-state
// placeholder.
func (svc *TrackerService) DailyBuckets(tracker model.TrackerType) ([]model.DailyBucket, bool) {
	now := svc.now()
	days := weekDays(now)
	buckets := make([]model.DailyBucket, 0, 7)
	hasData := false

	switch tracker {
	case model.TrackerStudy:
		entries := svc.store.StudyEntries()
		for _, day := range days {
			var hours float64
			var effSum float64
			count := 0
			for _, e := range entries {
				if day.window.Contains(e.Timestamp) {
					hours += e.DurationHours
					effSum += float64(e.Efficiency)
					count++
				}
			}
			var eff float64
			if count > 0 {
				eff = effSum / float64(count)
			}
			if hours > 0 {
				hasData = true
			}
			buckets = append(buckets, model.DailyBucket{
				DayLabel: day.label,
				Date:     day.date,
				Values:   map[string]float64{"hours": round1(hours), "efficiency": round1(eff)},
			})
		}

	case model.TrackerWorkout:
		entries := svc.store.WorkoutEntries()
		for _, day := range days {
			var minutes, calories float64
			for _, e := range entries {
				if day.window.Contains(e.Timestamp) {
					minutes += e.DurationMinutes
					calories += e.Calories
				}
			}
			if minutes > 0 {
				hasData = true
			}
			buckets = append(buckets, model.DailyBucket{
				DayLabel: day.label,
				Date:     day.date,
				Values:   map[string]float64{"minutes": minutes, "calories": calories},
			})
		}

	case model.TrackerMeal:
		entries := svc.store.MealEntries()
		for _, day := range days {
			var calories, water float64
			for _, e := range entries {
				if day.window.Contains(e.Timestamp) {
					calories += e.Calories
					water += e.WaterIntakeCups
				}
			}
			if calories > 0 {
				hasData = true
			}
			buckets = append(buckets, model.DailyBucket{
				DayLabel: day.label,
				Date:     day.date,
				Values:   map[string]float64{"calories": calories, "water": water},
			})
		}

	case model.TrackerSleep:
		entries := svc.store.SleepEntries()
		for _, day := range days {
			// Multiple sleep logs on one day overwrite for charting: the
			// last entry by insertion order represents the day.
			var last *model.SleepEntry
			for i := range entries {
				if day.window.Contains(entries[i].Timestamp) {
					last = &entries[i]
				}
			}
			var hours, quality float64
			if last != nil {
				hours = round1(last.DurationHours)
				quality = float64(last.Quality)
			}
			if hours > 0 {
				hasData = true
			}
			buckets = append(buckets, model.DailyBucket{
				DayLabel: day.label,
				Date:     day.date,
				Values:   map[string]float64{"hours": hours, "quality": quality},
			})
		}
	}

	return buckets, hasData
}

// Distribution returns the whole-log categorical breakdown for the tracker.
// Unlike the weekly series it is not window-limited. Categories appear in
// first-observed order so repeated reads over an unchanged log are
// byte-identical.
func (svc *TrackerService) Distribution(tracker model.TrackerType) []model.DistributionSlice {
	switch tracker {
	case model.TrackerStudy:
		// Total hours studied per subject.
		totals := map[string]float64{}
		order := []string{}
		for _, e := range svc.store.StudyEntries() {
			if _, seen := totals[e.Subject]; !seen {
				order = append(order, e.Subject)
			}
			totals[e.Subject] += e.DurationHours
		}
		return slicesInOrder(order, totals)

	case model.TrackerWorkout:
		// Session count per workout type.
		totals := map[string]float64{}
		order := []string{}
		for _, e := range svc.store.WorkoutEntries() {
			if _, seen := totals[e.WorkoutType]; !seen {
				order = append(order, e.WorkoutType)
			}
			totals[e.WorkoutType]++
		}
		return slicesInOrder(order, totals)

	case model.TrackerMeal:
		// Total calories per meal type.
		totals := map[string]float64{}
		order := []string{}
		for _, e := range svc.store.MealEntries() {
			key := string(e.MealType)
			if _, seen := totals[key]; !seen {
				order = append(order, key)
			}
			totals[key] += e.Calories
		}
		return slicesInOrder(order, totals)

	case model.TrackerSleep:
		return svc.sleepPhaseBreakdown()
	}
	return nil
}

func slicesInOrder(order []string, totals map[string]float64) []model.DistributionSlice {
	out := make([]model.DistributionSlice, 0, len(order))
	for _, name := range order {
		out = append(out, model.DistributionSlice{Name: name, Value: totals[name]})
	}
	return out
}

// sleepPhaseBreakdown estimates sleep phases from aggregate totals. The log
// has no per-phase measurements, so the split is a fixed proportional model
// modulated by average quality: higher quality shifts hours toward deep and
// REM sleep and away from time awake.
func (svc *TrackerService) sleepPhaseBreakdown() []model.DistributionSlice {
	entries := svc.store.SleepEntries()

	avgQuality := 3.0
	if len(entries) > 0 {
		var sum float64
		for _, e := range entries {
			sum += float64(e.Quality)
		}
		avgQuality = sum / float64(len(entries))
	}

	var totalHours float64
	for _, e := range entries {
		totalHours += e.DurationHours
	}

	qualityFactor := math.Max(1, avgQuality/2.5)
	return []model.DistributionSlice{
		{Name: "Deep Sleep", Value: math.Round(totalHours * 0.2 * qualityFactor)},
		{Name: "REM Sleep", Value: math.Round(totalHours * 0.25 * qualityFactor)},
		{Name: "Light Sleep", Value: math.Round(totalHours * 0.4)},
		{Name: "Awake", Value: math.Round(totalHours * 0.15 / qualityFactor)},
	}
}

// NutritionBreakdown estimates a macronutrient split from whole-log calorie
// totals. Like the sleep phases this is a labeled approximation, not
// measured data.
func (svc *TrackerService) NutritionBreakdown() []model.DistributionSlice {
	var totalCalories float64
	for _, e := range svc.store.MealEntries() {
		totalCalories += e.Calories
	}
	return []model.DistributionSlice{
		{Name: "Protein", Value: math.Round(totalCalories * 0.3)},
		{Name: "Carbs", Value: math.Round(totalCalories * 0.5)},
		{Name: "Fats", Value: math.Round(totalCalories * 0.15)},
		{Name: "Fiber", Value: math.Round(totalCalories * 0.05)},
	}
}

// EfficiencyTrend returns the 7-day series of mean study efficiency.
func (svc *TrackerService) EfficiencyTrend() ([]model.DailyBucket, bool) {
	entries := svc.store.StudyEntries()
	days := weekDays(svc.now())
	out := make([]model.DailyBucket, 0, 7)
	hasData := false
	for _, day := range days {
		var sum float64
		count := 0
		for _, e := range entries {
			if day.window.Contains(e.Timestamp) {
				sum += float64(e.Efficiency)
				count++
			}
		}
		var avg float64
		if count > 0 {
			avg = round1(sum / float64(count))
		}
		if avg > 0 {
			hasData = true
		}
		out = append(out, model.DailyBucket{
			DayLabel: day.label,
			Date:     day.date,
			Values:   map[string]float64{"efficiency": avg},
		})
	}
	return out, hasData
}

// IntensityTrend returns the 7-day series of mean workout intensity.
func (svc *TrackerService) IntensityTrend() ([]model.DailyBucket, bool) {
	entries := svc.store.WorkoutEntries()
	days := weekDays(svc.now())
	out := make([]model.DailyBucket, 0, 7)
	hasData := false
	for _, day := range days {
		var sum float64
		count := 0
		for _, e := range entries {
			if day.window.Contains(e.Timestamp) {
				sum += float64(e.Intensity)
				count++
			}
		}
		var avg float64
		if count > 0 {
			avg = round1(sum / float64(count))
		}
		if avg > 0 {
			hasData = true
		}
		out = append(out, model.DailyBucket{
			DayLabel: day.label,
			Date:     day.date,
			Values:   map[string]float64{"intensity": avg},
		})
	}
	return out, hasData
}

// SleepAverageTrend returns, for each of the last 7 days, the mean sleep
// duration over the trailing week ending on that day.
func (svc *TrackerService) SleepAverageTrend() ([]model.DailyBucket, bool) {
	entries := svc.store.SleepEntries()
	days := weekDays(svc.now())
	out := make([]model.DailyBucket, 0, 7)
	hasData := false
	for _, day := range days {
		dayEnd := day.window.End
		weekStart := dayEnd.AddDate(0, 0, -7)
		var sum float64
		count := 0
		for _, e := range entries {
			if !e.Timestamp.After(dayEnd) && !e.Timestamp.Before(weekStart) {
				sum += e.DurationHours
				count++
			}
		}
		var avg float64
		if count > 0 {
			avg = round1(sum / float64(count))
		}
		if avg > 0 {
			hasData = true
		}
		out = append(out, model.DailyBucket{
			DayLabel: day.label,
			Date:     day.date,
			Values:   map[string]float64{"average": avg},
		})
	}
	return out, hasData
}
