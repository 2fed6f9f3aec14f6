package repository

import (
	"main/model"
	"main/utils"
	"sync"
	"time"
)

// Archiver mirrors appended entries into external durable storage.
// Implementations must not be read from by this service; the in-memory
// log is the only source of truth for aggregation.
type Archiver interface {
	ArchiveStudy(entry *model.StudyEntry)
	ArchiveWorkout(entry *model.WorkoutEntry)
	ArchiveMeal(entry *model.MealEntry)
	ArchiveSleep(entry *model.SleepEntry)
}

// EntryStore holds the four append-only entry logs for the lifetime of the
// process. Entries are never updated or deleted; each log preserves
// insertion order, which downstream aggregation relies on.
type EntryStore struct {
	mu       sync.RWMutex
	study    []model.StudyEntry
	workout  []model.WorkoutEntry
	meal     []model.MealEntry
	sleep    []model.SleepEntry
	now      func() time.Time
	archiver Archiver
}

// NewEntryStore creates an empty store stamped by the real clock.
func NewEntryStore() *EntryStore {
	return &EntryStore{now: time.Now}
}

// NewEntryStoreWithClock creates a store with an injected clock for tests.
func NewEntryStoreWithClock(now func() time.Time) *EntryStore {
	return &EntryStore{now: now}
}

// SetArchiver attaches an optional archive mirror. Must be called before the
// store starts receiving writes.
func (s *EntryStore) SetArchiver(a Archiver) {
	s.archiver = a
}

// AddStudy appends a study entry, assigning a fresh id and the current
// timestamp. The caller never controls either.
func (s *EntryStore) AddStudy(entry model.StudyEntry) *model.StudyEntry {
	s.mu.Lock()
	entry.ID = utils.GenerateEntryID()
	entry.Timestamp = s.now()
	s.study = append(s.study, entry)
	s.mu.Unlock()

	utils.TrackEntryAppend(string(model.TrackerStudy))
	if s.archiver != nil {
		s.archiver.ArchiveStudy(&entry)
	}
	return &entry
}

// AddWorkout appends a workout entry.
func (s *EntryStore) AddWorkout(entry model.WorkoutEntry) *model.WorkoutEntry {
	s.mu.Lock()
	entry.ID = utils.GenerateEntryID()
	entry.Timestamp = s.now()
	s.workout = append(s.workout, entry)
	s.mu.Unlock()

	utils.TrackEntryAppend(string(model.TrackerWorkout))
	if s.archiver != nil {
		s.archiver.ArchiveWorkout(&entry)
	}
	return &entry
}

// AddMeal appends a meal entry.
func (s *EntryStore) AddMeal(entry model.MealEntry) *model.MealEntry {
	s.mu.Lock()
	entry.ID = utils.GenerateEntryID()
	entry.Timestamp = s.now()
	s.meal = append(s.meal, entry)
	s.mu.Unlock()

	utils.TrackEntryAppend(string(model.TrackerMeal))
	if s.archiver != nil {
		s.archiver.ArchiveMeal(&entry)
	}
	return &entry
}

// AddSleep appends a sleep entry.
func (s *EntryStore) AddSleep(entry model.SleepEntry) *model.SleepEntry {
	s.mu.Lock()
	entry.ID = utils.GenerateEntryID()
	entry.Timestamp = s.now()
	s.sleep = append(s.sleep, entry)
	s.mu.Unlock()

	utils.TrackEntryAppend(string(model.TrackerSleep))
	if s.archiver != nil {
		s.archiver.ArchiveSleep(&entry)
	}
	return &entry
}

// StudyEntries returns a snapshot of the study log in insertion order.
func (s *EntryStore) StudyEntries() []model.StudyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StudyEntry, len(s.study))
	copy(out, s.study)
	return out
}

// WorkoutEntries returns a snapshot of the workout log in insertion order.
func (s *EntryStore) WorkoutEntries() []model.WorkoutEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.WorkoutEntry, len(s.workout))
	copy(out, s.workout)
	return out
}

// MealEntries returns a snapshot of the meal log in insertion order.
func (s *EntryStore) MealEntries() []model.MealEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MealEntry, len(s.meal))
	copy(out, s.meal)
	return out
}

// SleepEntries returns a snapshot of the sleep log in insertion order.
func (s *EntryStore) SleepEntries() []model.SleepEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SleepEntry, len(s.sleep))
	copy(out, s.sleep)
	return out
}

// Counts returns the size of each log, keyed by tracker type.
func (s *EntryStore) Counts() map[model.TrackerType]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[model.TrackerType]int{
		model.TrackerStudy:   len(s.study),
		model.TrackerWorkout: len(s.workout),
		model.TrackerMeal:    len(s.meal),
		model.TrackerSleep:   len(s.sleep),
	}
}
