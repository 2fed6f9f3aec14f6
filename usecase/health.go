package usecase

import "main/model"

// RecentWindowDays is the lookback used by the health score and the insight
// pipeline.
const RecentWindowDays = 30

// RecentActivity is the recent-window extract of all four logs, in
// insertion order.
type RecentActivity struct {
	Study   []model.StudyEntry
	Workout []model.WorkoutEntry
	Meal    []model.MealEntry
	Sleep   []model.SleepEntry
}

// Empty reports whether no tracker has any recent entries.
func (r RecentActivity) Empty() bool {
	return len(r.Study) == 0 && len(r.Workout) == 0 && len(r.Meal) == 0 && len(r.Sleep) == 0
}

// RecentActivity filters every log down to entries from the last `days`
// days (inclusive lower bound, no upper bound).
func (svc *TrackerService) RecentActivity(days int) RecentActivity {
	cutoff := svc.now().AddDate(0, 0, -days)
	var out RecentActivity
	for _, e := range svc.store.StudyEntries() {
		if !e.Timestamp.Before(cutoff) {
			out.Study = append(out.Study, e)
		}
	}
	for _, e := range svc.store.WorkoutEntries() {
		if !e.Timestamp.Before(cutoff) {
			out.Workout = append(out.Workout, e)
		}
	}
	for _, e := range svc.store.MealEntries() {
		if !e.Timestamp.Before(cutoff) {
			out.Meal = append(out.Meal, e)
		}
	}
	for _, e := range svc.store.SleepEntries() {
		if !e.Timestamp.Before(cutoff) {
			out.Sleep = append(out.Sleep, e)
		}
	}
	return out
}

// HealthScore maps recent activity into a single engagement score on
// [0,100]. The model is additive-only from a base of 75, so the floor is 75
// in practice; adding penalty terms would require revisiting the clamp.
func (svc *TrackerService) HealthScore() int {
	return ScoreActivity(svc.RecentActivity(RecentWindowDays))
}

// ScoreActivity computes the health score for a recent-window extract.
func ScoreActivity(recent RecentActivity) int {
	score := 75

	if len(recent.Study) > 0 {
		score += 5
	}
	if len(recent.Workout) > 3 {
		score += 7
	}
	if len(recent.Meal) > 5 {
		score += 5
	}
	if len(recent.Sleep) > 0 {
		// Average quality over the last 7 sleep entries by insertion
		// order, not the last 7 days.
		tail := recent.Sleep
		if len(tail) > 7 {
			tail = tail[len(tail)-7:]
		}
		var sum float64
		for _, e := range tail {
			sum += float64(e.Quality)
		}
		if sum/float64(len(tail)) > 3 {
			score += 8
		} else {
			score += 4
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}
