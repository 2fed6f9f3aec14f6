package repository

import (
	"context"
	"fmt"
	"log"
	"main/model"
	"main/utils"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoArchive mirrors appended entries into MongoDB, one collection per
// tracker. It is write-only from this service: reads always come from the
// in-memory store, so the archive never influences aggregation. Writes are
// fire-and-forget with logged errors.
type MongoArchive struct {
	study   *mongo.Collection
	workout *mongo.Collection
	meal    *mongo.Collection
	sleep   *mongo.Collection
}

// NewMongoArchive connects to MongoDB and verifies the connection.
func NewMongoArchive(ctx context.Context, uri, dbName string) (*MongoArchive, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	db := client.Database(dbName)
	return &MongoArchive{
		study:   db.Collection("study_entries"),
		workout: db.Collection("workout_entries"),
		meal:    db.Collection("meal_entries"),
		sleep:   db.Collection("sleep_entries"),
	}, nil
}

func (a *MongoArchive) insert(tracker string, coll *mongo.Collection, doc interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			log.Printf("Failed to archive %s entry: %v", tracker, err)
			utils.TrackArchiveWrite(tracker, "error")
			utils.TrackError("archive")
			return
		}
		utils.TrackArchiveWrite(tracker, "ok")
	}()
}

func (a *MongoArchive) ArchiveStudy(entry *model.StudyEntry) {
	a.insert(string(model.TrackerStudy), a.study, entry)
}

func (a *MongoArchive) ArchiveWorkout(entry *model.WorkoutEntry) {
	a.insert(string(model.TrackerWorkout), a.workout, entry)
}

func (a *MongoArchive) ArchiveMeal(entry *model.MealEntry) {
	a.insert(string(model.TrackerMeal), a.meal, entry)
}

func (a *MongoArchive) ArchiveSleep(entry *model.SleepEntry) {
	a.insert(string(model.TrackerSleep), a.sleep, entry)
}
