package repository

import (
	"main/model"
	"main/utils"
	"time"
)

// SeedDemoData pre-populates the store with a sample week of activity for
// demo installs. Timestamps are fixed day offsets from now so the seeded
// entries land inside the chart and summary windows.
func SeedDemoData(store *EntryStore) {
	now := store.now()
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	store.mu.Lock()
	defer store.mu.Unlock()

	store.study = append(store.study,
		model.StudyEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(6), Subject: "Mathematics", DurationHours: 2.5, Efficiency: 4, Notes: "Covered calculus basics"},
		model.StudyEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(5), Subject: "Physics", DurationHours: 1.5, Efficiency: 3, Notes: "Reviewed mechanics"},
		model.StudyEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(3), Subject: "Programming", DurationHours: 3, Efficiency: 5, Notes: "Practiced data structures"},
	)

	store.workout = append(store.workout,
		model.WorkoutEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(6), WorkoutType: "Cardio", DurationMinutes: 45, Calories: 320, Intensity: 4},
		model.WorkoutEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(4), WorkoutType: "Strength", DurationMinutes: 60, Calories: 380, Intensity: 5},
		model.WorkoutEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(2), WorkoutType: "Yoga", DurationMinutes: 30, Calories: 180, Intensity: 2},
	)

	store.meal = append(store.meal,
		model.MealEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(7), MealType: model.MealBreakfast, FoodItems: "Oatmeal, banana, coffee", Calories: 350, WaterIntakeCups: 2},
		model.MealEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(6), MealType: model.MealLunch, FoodItems: "Chicken salad sandwich, apple", Calories: 520, WaterIntakeCups: 3},
		model.MealEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(5), MealType: model.MealDinner, FoodItems: "Salmon, brown rice, broccoli", Calories: 650, WaterIntakeCups: 2},
		model.MealEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(4), MealType: model.MealSnack, FoodItems: "Greek yogurt with berries", Calories: 180, WaterIntakeCups: 1},
	)

	store.sleep = append(store.sleep,
		model.SleepEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(7), DurationHours: 7.5, Quality: 4, Notes: "Went to bed early"},
		model.SleepEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(6), DurationHours: 6.5, Quality: 3, Notes: "Took time to fall asleep"},
		model.SleepEntry{ID: utils.GenerateEntryID(), Timestamp: daysAgo(5), DurationHours: 8, Quality: 5, Notes: "Felt well-rested"},
	)
}
