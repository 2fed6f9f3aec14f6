package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	trackers *usecase.TrackerService
}

func NewStatsHandler(trackers *usecase.TrackerService) *StatsHandler {
	return &StatsHandler{trackers: trackers}
}

// GetDailyBuckets returns the tracker's fixed 7-point weekly chart series.
// has_data tells the consumer whether to render the chart or an empty-state
// placeholder: an all-zero week still returns 7 buckets.
func (h *StatsHandler) GetDailyBuckets(c *gin.Context) {
	tracker, ok := trackerParam(c)
	if !ok {
		return
	}
	buckets, hasData := h.trackers.DailyBuckets(tracker)
	utils.Success(c, gin.H{
		"tracker":  tracker.DisplayName(),
		"buckets":  buckets,
		"has_data": hasData,
	})
}

// GetWeeklySummary returns the tracker's summary-card statistics.
func (h *StatsHandler) GetWeeklySummary(c *gin.Context) {
	tracker, ok := trackerParam(c)
	if !ok {
		return
	}
	utils.Success(c, gin.H{
		"tracker": tracker.DisplayName(),
		"stats":   h.trackers.WeeklySummary(tracker),
	})
}

// GetDistribution returns the tracker's categorical breakdown. The sleep
// breakdown is a labeled estimate derived from aggregate totals.
func (h *StatsHandler) GetDistribution(c *gin.Context) {
	tracker, ok := trackerParam(c)
	if !ok {
		return
	}
	utils.Success(c, gin.H{
		"tracker":   tracker.DisplayName(),
		"slices":    h.trackers.Distribution(tracker),
		"estimated": tracker == model.TrackerSleep,
	})
}

// GetTrends returns the tracker's trend view. Study, workout, and sleep
// produce 7-point series; the meal trend is the estimated macronutrient
// breakdown.
func (h *StatsHandler) GetTrends(c *gin.Context) {
	tracker, ok := trackerParam(c)
	if !ok {
		return
	}

	switch tracker {
	case model.TrackerStudy:
		series, hasData := h.trackers.EfficiencyTrend()
		utils.Success(c, gin.H{"tracker": tracker.DisplayName(), "series": series, "has_data": hasData})
	case model.TrackerWorkout:
		series, hasData := h.trackers.IntensityTrend()
		utils.Success(c, gin.H{"tracker": tracker.DisplayName(), "series": series, "has_data": hasData})
	case model.TrackerMeal:
		slices := h.trackers.NutritionBreakdown()
		hasData := false
		for _, s := range slices {
			if s.Value > 0 {
				hasData = true
				break
			}
		}
		utils.Success(c, gin.H{"tracker": tracker.DisplayName(), "slices": slices, "has_data": hasData, "estimated": true})
	case model.TrackerSleep:
		series, hasData := h.trackers.SleepAverageTrend()
		utils.Success(c, gin.H{"tracker": tracker.DisplayName(), "series": series, "has_data": hasData})
	}
}

// GetHealthScore returns the composite engagement score.
func (h *StatsHandler) GetHealthScore(c *gin.Context) {
	utils.Success(c, gin.H{"score": h.trackers.HealthScore()})
}
