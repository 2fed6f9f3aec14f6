package model

import "time"

// TrackerType identifies one of the four parallel entry logs.
type TrackerType string

const (
	TrackerStudy   TrackerType = "study"
	TrackerWorkout TrackerType = "workout"
	TrackerMeal    TrackerType = "meal"
	TrackerSleep   TrackerType = "sleep"
)

// AllTrackerTypes lists every tracker in display order.
var AllTrackerTypes = []TrackerType{TrackerStudy, TrackerWorkout, TrackerMeal, TrackerSleep}

// ParseTrackerType maps a route parameter to a tracker type.
func ParseTrackerType(s string) (TrackerType, bool) {
	switch TrackerType(s) {
	case TrackerStudy, TrackerWorkout, TrackerMeal, TrackerSleep:
		return TrackerType(s), true
	}
	return "", false
}

// DisplayName returns the human-facing tracker title used in labels.
func (t TrackerType) DisplayName() string {
	switch t {
	case TrackerStudy:
		return "Study Tracker"
	case TrackerWorkout:
		return "Workout Tracker"
	case TrackerMeal:
		return "Meal Planner"
	case TrackerSleep:
		return "Sleep Tracker"
	}
	return string(t)
}

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// StudyEntry records a single study session. Entries are immutable once
// appended to the store.
type StudyEntry struct {
	ID            string    `json:"id" bson:"_id"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
	Subject       string    `json:"subject" bson:"subject"`
	DurationHours float64   `json:"duration_hours" bson:"duration_hours"`
	Efficiency    int       `json:"efficiency" bson:"efficiency"` // 1-5 scale
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

// WorkoutEntry records a single workout session.
type WorkoutEntry struct {
	ID              string    `json:"id" bson:"_id"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
	WorkoutType     string    `json:"workout_type" bson:"workout_type"`
	DurationMinutes float64   `json:"duration_minutes" bson:"duration_minutes"`
	Calories        float64   `json:"calories" bson:"calories"`
	Intensity       int       `json:"intensity" bson:"intensity"` // 1-5 scale
}

// MealEntry records one logged meal.
type MealEntry struct {
	ID              string    `json:"id" bson:"_id"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
	MealType        MealType  `json:"meal_type" bson:"meal_type"`
	FoodItems       string    `json:"food_items" bson:"food_items"`
	Calories        float64   `json:"calories" bson:"calories"`
	WaterIntakeCups float64   `json:"water_intake_cups" bson:"water_intake_cups"`
}

// SleepEntry records one night of sleep.
type SleepEntry struct {
	ID            string    `json:"id" bson:"_id"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
	DurationHours float64   `json:"duration_hours" bson:"duration_hours"`
	Quality       int       `json:"quality" bson:"quality"` // 1-5 scale
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
}
