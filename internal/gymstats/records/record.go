package records

import (
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
)

// PersonalRecord is the single stored best of a user for an exercise.
type PersonalRecord struct {
	UserID     int
	ExerciseID int
	Weight     float64
	Reps       int
	Date       time.Time
}

type StoredRecord struct {
	ExerciseID   int                `json:"exerciseId"`
	ExerciseName string             `json:"exerciseName"`
	Direction    gymstats.Direction `json:"improvementDirection"`
	Weight       float64            `json:"weight"`
	Reps         int                `json:"reps"`
	Date         time.Time          `json:"date"`
}

// SetRow is one logged set with the details of its exercise and workout.
type SetRow struct {
	SetID        int
	ExerciseID   int
	ExerciseName string
	Direction    gymstats.Direction
	Weight       float64
	Reps         int
	Date         time.Time
}

type RepBest struct {
	Reps   int       `json:"reps"`
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
	SetID  int       `json:"setId"`
}

type ExerciseRepBests struct {
	ExerciseID   int                `json:"exerciseId"`
	ExerciseName string             `json:"exerciseName,omitempty"`
	Direction    gymstats.Direction `json:"improvementDirection,omitempty"`
	Bests        []RepBest          `json:"bests"`
}

type DailyMax struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

type ExerciseHistory struct {
	ExerciseID   int        `json:"exerciseId"`
	ExerciseName string     `json:"exerciseName,omitempty"`
	Days         []DailyMax `json:"days"`
}
