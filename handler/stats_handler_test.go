package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"main/model"
	"main/repository"
	"main/usecase"
)

func newStatsRouter() (*gin.Engine, *repository.EntryStore) {
	gin.SetMode(gin.TestMode)
	clock := func() time.Time { return handlerTestNow }
	store := repository.NewEntryStoreWithClock(clock)
	trackers := usecase.NewTrackerServiceWithClock(store, clock)
	h := NewStatsHandler(trackers)

	router := gin.New()
	router.GET("/api/trackers/:tracker/buckets", h.GetDailyBuckets)
	router.GET("/api/trackers/:tracker/summary", h.GetWeeklySummary)
	router.GET("/api/trackers/:tracker/distribution", h.GetDistribution)
	router.GET("/api/trackers/:tracker/trends", h.GetTrends)
	router.GET("/api/health-score", h.GetHealthScore)
	return router, store
}

func TestGetDailyBucketsAlwaysSeven(t *testing.T) {
	router, _ := newStatsRouter()

	w := doRequest(t, router, http.MethodGet, "/api/trackers/study/buckets", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := decodeData(t, w)
	buckets, ok := data["buckets"].([]interface{})
	if !ok || len(buckets) != 7 {
		t.Fatalf("buckets = %v, want 7 entries", data["buckets"])
	}
	if data["has_data"] != false {
		t.Error("empty log should report has_data=false")
	}
	if data["tracker"] != "Study Tracker" {
		t.Errorf("tracker = %v", data["tracker"])
	}
}

func TestGetDailyBucketsWithData(t *testing.T) {
	router, store := newStatsRouter()
	store.AddStudy(model.StudyEntry{Subject: "Math", DurationHours: 2, Efficiency: 4})

	data := decodeData(t, doRequest(t, router, http.MethodGet, "/api/trackers/study/buckets", ""))
	if data["has_data"] != true {
		t.Error("has_data should be true after an entry lands in the window")
	}
	buckets := data["buckets"].([]interface{})
	today := buckets[6].(map[string]interface{})
	values := today["values"].(map[string]interface{})
	if values["hours"] != 2.0 {
		t.Errorf("today's hours = %v, want 2", values["hours"])
	}
}

func TestGetWeeklySummary(t *testing.T) {
	router, store := newStatsRouter()
	store.AddMeal(model.MealEntry{MealType: model.MealLunch, FoodItems: "Salad", Calories: 500, WaterIntakeCups: 4})

	data := decodeData(t, doRequest(t, router, http.MethodGet, "/api/trackers/meal/summary", ""))
	if data["tracker"] != "Meal Planner" {
		t.Errorf("tracker = %v", data["tracker"])
	}
	stats, ok := data["stats"].([]interface{})
	if !ok || len(stats) != 3 {
		t.Fatalf("stats = %v, want 3 cards", data["stats"])
	}
	first := stats[0].(map[string]interface{})
	if first["label"] != "Calories Today" || first["value"] != "500" {
		t.Errorf("calories card = %v", first)
	}
}

func TestGetDistributionEstimatedFlag(t *testing.T) {
	router, _ := newStatsRouter()

	sleep := decodeData(t, doRequest(t, router, http.MethodGet, "/api/trackers/sleep/distribution", ""))
	if sleep["estimated"] != true {
		t.Error("sleep distribution should be flagged estimated")
	}

	study := decodeData(t, doRequest(t, router, http.MethodGet, "/api/trackers/study/distribution", ""))
	if study["estimated"] != false {
		t.Error("study distribution is exact, not estimated")
	}
}

func TestGetTrendsMealIsNutritionBreakdown(t *testing.T) {
	router, store := newStatsRouter()
	store.AddMeal(model.MealEntry{MealType: model.MealDinner, FoodItems: "Rice", Calories: 1000, WaterIntakeCups: 2})

	data := decodeData(t, doRequest(t, router, http.MethodGet, "/api/trackers/meal/trends", ""))
	if data["estimated"] != true {
		t.Error("nutrition breakdown should be flagged estimated")
	}
	slices, ok := data["slices"].([]interface{})
	if !ok || len(slices) != 4 {
		t.Fatalf("slices = %v, want 4 macronutrient groups", data["slices"])
	}
	carbs := slices[1].(map[string]interface{})
	if carbs["name"] != "Carbs" || carbs["value"] != 500.0 {
		t.Errorf("carbs slice = %v", carbs)
	}
}

func TestGetTrendsStudySeries(t *testing.T) {
	router, _ := newStatsRouter()

	data := decodeData(t, doRequest(t, router, http.MethodGet, "/api/trackers/study/trends", ""))
	series, ok := data["series"].([]interface{})
	if !ok || len(series) != 7 {
		t.Fatalf("series = %v, want 7 points", data["series"])
	}
	if data["has_data"] != false {
		t.Error("empty log should report has_data=false")
	}
}

func TestGetHealthScore(t *testing.T) {
	router, store := newStatsRouter()
	store.AddStudy(model.StudyEntry{Subject: "Math", DurationHours: 1, Efficiency: 3})

	data := decodeData(t, doRequest(t, router, http.MethodGet, "/api/health-score", ""))
	if data["score"] != 80.0 {
		t.Errorf("score = %v, want 80", data["score"])
	}
}

func TestStatsUnknownTracker(t *testing.T) {
	router, _ := newStatsRouter()

	for _, path := range []string{
		"/api/trackers/nope/buckets",
		"/api/trackers/nope/summary",
		"/api/trackers/nope/distribution",
		"/api/trackers/nope/trends",
	} {
		w := doRequest(t, router, http.MethodGet, path, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}
