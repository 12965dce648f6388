package workouts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/programs"
)

const DateFormat = "2006-01-02"

type Workout struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	ProgramID   int       `json:"programId"`
	ProgramName string    `json:"programName,omitempty"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Set struct {
	ID           int            `json:"id"`
	WorkoutID    int            `json:"workoutId"`
	ExerciseID   int            `json:"exerciseId"`
	ExerciseName string         `json:"exerciseName"`
	SetNumber    int            `json:"setNumber"`
	Weight       float64        `json:"weight"`
	Reps         int            `json:"reps"`
	Side         *gymstats.Side `json:"side"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Detail is a workout with the exercises planned by its program and the sets logged so far.
type Detail struct {
	Workout
	Exercises []programs.ProgramExercise `json:"exercises"`
	Sets      []Set                      `json:"sets"`
}

// NewSet is a set to be logged. A nil Side means the set is not split by body side.
// MaxReps caps the reps of a single set.
const MaxReps = 1000

type NewSet struct {
	ExerciseID int
	Weight     float64
	Reps       int
	Side       *gymstats.Side
}

func (s NewSet) Validate() error {
	if s.ExerciseID <= 0 {
		return fmt.Errorf("%w: exercise id missing", gymstats.ErrInvalidInput)
	}
	if s.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", gymstats.ErrInvalidInput)
	}
	if s.Reps > MaxReps {
		return fmt.Errorf("%w: reps must be at most %d", gymstats.ErrInvalidInput, MaxReps)
	}
	if s.Weight < 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
		return fmt.Errorf("%w: weight must be a non negative number", gymstats.ErrInvalidInput)
	}
	return nil
}

// LogSetResult is returned after a set is stored. IsPR tells whether the set became the personal record.
type LogSetResult struct {
	SetID     int  `json:"setId"`
	SetNumber int  `json:"setNumber"`
	IsPR      bool `json:"isPR"`
}

type StartPayload struct {
	ProgramID int    `json:"programId" validate:"required,gt=0"`
	Date      string `json:"date"`
	Notes     string `json:"notes" validate:"max=2000"`
}

type UpdatePayload struct {
	Date  string `json:"date"`
	Notes string `json:"notes" validate:"max=2000"`
}

type LogSetPayload struct {
	ExerciseID int     `json:"exerciseId" validate:"required,gt=0"`
	Weight     float64 `json:"weight" validate:"gte=0"`
	Reps       int     `json:"reps" validate:"required,gt=0,lte=1000"`
	Side       string  `json:"side"`
}

// ToNewSet parses the side of the payload.
func (p LogSetPayload) ToNewSet() (NewSet, error) {
	side, err := gymstats.ParseSide(p.Side)
	if err != nil {
		return NewSet{}, err
	}
	return NewSet{
		ExerciseID: p.ExerciseID,
		Weight:     p.Weight,
		Reps:       p.Reps,
		Side:       side,
	}, nil
}

// ParseDate parses a YYYY-MM-DD date. An empty string is the day of now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date [%s], expected %s", gymstats.ErrInvalidInput, s, DateFormat)
	}
	return date, nil
}
