package dto

import (
	"main/model"
	"main/utils"
)

// Field defaults applied at the entry-creation boundary. Missing or invalid
// form fields are silently replaced, never rejected: entry creation cannot
// fail validation in this service.
type StudyDefaults struct {
	Subject       string
	DurationHours float64
	Efficiency    int
}

type WorkoutDefaults struct {
	WorkoutType     string
	DurationMinutes float64
	Calories        float64
	Intensity       int
}

type MealDefaults struct {
	MealType        model.MealType
	FoodItems       string
	Calories        float64
	WaterIntakeCups float64
}

type SleepDefaults struct {
	DurationHours float64
	Quality       int
}

var (
	DefaultStudy   = StudyDefaults{Subject: "Untitled", DurationHours: 1, Efficiency: 3}
	DefaultWorkout = WorkoutDefaults{WorkoutType: "Other", DurationMinutes: 30, Calories: 0, Intensity: 3}
	DefaultMeal    = MealDefaults{MealType: model.MealSnack, FoodItems: "Not specified", Calories: 0, WaterIntakeCups: 0}
	DefaultSleep   = SleepDefaults{DurationHours: 7, Quality: 3}
)

// CreateStudyRequest is the partial study record accepted from entry forms.
// All fields are optional; no binding rule rejects a request.
type CreateStudyRequest struct {
	Subject       string  `json:"subject"`
	DurationHours float64 `json:"duration_hours"`
	Efficiency    int     `json:"efficiency"`
	Notes         string  `json:"notes"`
}

// ToEntry applies the study defaults table and returns the entry to append.
// ID and timestamp are left for the store to assign.
func (r CreateStudyRequest) ToEntry() model.StudyEntry {
	entry := model.StudyEntry{
		Subject:       r.Subject,
		DurationHours: r.DurationHours,
		Efficiency:    r.Efficiency,
		Notes:         r.Notes,
	}
	if entry.Subject == "" {
		entry.Subject = DefaultStudy.Subject
	}
	if entry.DurationHours <= 0 {
		entry.DurationHours = DefaultStudy.DurationHours
	}
	if !utils.ValidRating(entry.Efficiency) {
		entry.Efficiency = DefaultStudy.Efficiency
	}
	return entry
}

type CreateWorkoutRequest struct {
	WorkoutType     string  `json:"workout_type"`
	DurationMinutes float64 `json:"duration_minutes"`
	Calories        float64 `json:"calories"`
	Intensity       int     `json:"intensity"`
}

func (r CreateWorkoutRequest) ToEntry() model.WorkoutEntry {
	entry := model.WorkoutEntry{
		WorkoutType:     r.WorkoutType,
		DurationMinutes: r.DurationMinutes,
		Calories:        r.Calories,
		Intensity:       r.Intensity,
	}
	if entry.WorkoutType == "" {
		entry.WorkoutType = DefaultWorkout.WorkoutType
	}
	if entry.DurationMinutes <= 0 {
		entry.DurationMinutes = DefaultWorkout.DurationMinutes
	}
	if entry.Calories < 0 {
		entry.Calories = DefaultWorkout.Calories
	}
	if !utils.ValidRating(entry.Intensity) {
		entry.Intensity = DefaultWorkout.Intensity
	}
	return entry
}

type CreateMealRequest struct {
	MealType        string  `json:"meal_type"`
	FoodItems       string  `json:"food_items"`
	Calories        float64 `json:"calories"`
	WaterIntakeCups float64 `json:"water_intake_cups"`
}

func (r CreateMealRequest) ToEntry() model.MealEntry {
	entry := model.MealEntry{
		FoodItems:       r.FoodItems,
		Calories:        r.Calories,
		WaterIntakeCups: r.WaterIntakeCups,
	}
	switch model.MealType(r.MealType) {
	case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
		entry.MealType = model.MealType(r.MealType)
	default:
		entry.MealType = DefaultMeal.MealType
	}
	if entry.FoodItems == "" {
		entry.FoodItems = DefaultMeal.FoodItems
	}
	if entry.Calories < 0 {
		entry.Calories = DefaultMeal.Calories
	}
	if entry.WaterIntakeCups < 0 {
		entry.WaterIntakeCups = DefaultMeal.WaterIntakeCups
	}
	return entry
}

type CreateSleepRequest struct {
	DurationHours float64 `json:"duration_hours"`
	Quality       int     `json:"quality"`
	Notes         string  `json:"notes"`
}

func (r CreateSleepRequest) ToEntry() model.SleepEntry {
	entry := model.SleepEntry{
		DurationHours: r.DurationHours,
		Quality:       r.Quality,
		Notes:         r.Notes,
	}
	if entry.DurationHours <= 0 {
		entry.DurationHours = DefaultSleep.DurationHours
	}
	if !utils.ValidRating(entry.Quality) {
		entry.Quality = DefaultSleep.Quality
	}
	return entry
}

// ListEntriesQuery bounds the entry-list endpoint. Limit of 0 means the
// whole log.
type ListEntriesQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=10000"`
}
