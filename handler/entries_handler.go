package handler

import (
	"log"
	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type EntriesHandler struct {
	store *repository.EntryStore
}

func NewEntriesHandler(store *repository.EntryStore) *EntriesHandler {
	return &EntriesHandler{store: store}
}

// trackerParam resolves the :tracker route parameter. Unknown trackers are
// a 400; the handler must not proceed after a false return.
func trackerParam(c *gin.Context) (model.TrackerType, bool) {
	tracker, ok := model.ParseTrackerType(c.Param("tracker"))
	if !ok {
		utils.BadRequest(c, "Unknown tracker type")
		return "", false
	}
	return tracker, true
}

// AddEntry appends one entry to the tracker's log. Missing or invalid
// fields are defaulted, so this endpoint never rejects a request body; even
// an unreadable body produces an all-defaults entry.
func (h *EntriesHandler) AddEntry(c *gin.Context) {
	tracker, ok := trackerParam(c)
	if !ok {
		return
	}

	switch tracker {
	case model.TrackerStudy:
		var req dto.CreateStudyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Defaulting unreadable study entry body: %v", err)
		}
		utils.Created(c, h.store.AddStudy(req.ToEntry()))

	case model.TrackerWorkout:
		var req dto.CreateWorkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Defaulting unreadable workout entry body: %v", err)
		}
		utils.Created(c, h.store.AddWorkout(req.ToEntry()))

	case model.TrackerMeal:
		var req dto.CreateMealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Defaulting unreadable meal entry body: %v", err)
		}
		utils.Created(c, h.store.AddMeal(req.ToEntry()))

	case model.TrackerSleep:
		var req dto.CreateSleepRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Defaulting unreadable sleep entry body: %v", err)
		}
		utils.Created(c, h.store.AddSleep(req.ToEntry()))
	}
}

// ListEntries returns the tracker's log in insertion order, optionally
// bounded to the most recent `limit` entries.
func (h *EntriesHandler) ListEntries(c *gin.Context) {
	tracker, ok := trackerParam(c)
	if !ok {
		return
	}

	var query dto.ListEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "Invalid limit parameter")
		return
	}

	switch tracker {
	case model.TrackerStudy:
		utils.Success(c, gin.H{"entries": tail(h.store.StudyEntries(), query.Limit)})
	case model.TrackerWorkout:
		utils.Success(c, gin.H{"entries": tail(h.store.WorkoutEntries(), query.Limit)})
	case model.TrackerMeal:
		utils.Success(c, gin.H{"entries": tail(h.store.MealEntries(), query.Limit)})
	case model.TrackerSleep:
		utils.Success(c, gin.H{"entries": tail(h.store.SleepEntries(), query.Limit)})
	}
}

func tail[T any](entries []T, limit int) []T {
	if limit > 0 && len(entries) > limit {
		return entries[len(entries)-limit:]
	}
	return entries
}
